package switches

//boolenum:gen=Enabled,pub
//boolenum:gen=locked

// Toggle names a switch.
type Toggle struct {
	Name string
}
