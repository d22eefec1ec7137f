package probingmap

// NoRecordFound - Custom error to inform that the key has no record in the map.
// Match it with errors.Is(err, NoRecordFound{}).
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}
