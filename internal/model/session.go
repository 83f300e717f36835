package model

// Session is one editing session over a captured report. It keeps the raw
// lines so every edit can be reverted by parsing them again.
type Session struct {
	Raw      []string
	Screen   *Screen
	pristine *Screen
}

// NewSession parses lines twice: once into the working Screen and once into
// an untouched snapshot.
func NewSession(lines []string) (*Session, error) {
	s := &Session{Raw: append([]string(nil), lines...)}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	pristine, err := ParseScreen(s.Raw)
	if err != nil {
		return nil, err
	}
	pristine.UpdateReplicaOf()
	s.pristine = pristine
	return s, nil
}

// Reset discards every edit made to the working Screen.
func (s *Session) Reset() error {
	screen, err := ParseScreen(s.Raw)
	if err != nil {
		return err
	}
	screen.UpdateReplicaOf()
	s.Screen = screen
	return nil
}

// Pristine returns the snapshot taken when the session was created.
func (s *Session) Pristine() *Screen {
	return s.pristine
}

// Changes lists the differences between the snapshot and the working Screen.
func (s *Session) Changes() []Change {
	return DiffScreens(s.pristine, s.Screen)
}
