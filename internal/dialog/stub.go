package dialog

// Stub is a scripted Service for tests: it records every alert and
// answers confirms and prompts immediately from preloaded responses.
type Stub struct {
	Alerts   []Request
	Confirms []bool
	Numbers  []NumberResult
}

func (s *Stub) Alert(kind Kind, title, text string) {
	s.Alerts = append(s.Alerts, Request{Kind: kind, Title: title, Text: text})
}

func (s *Stub) Confirm(title, text string, done func(bool)) {
	answer := false
	if len(s.Confirms) > 0 {
		answer = s.Confirms[0]
		s.Confirms = s.Confirms[1:]
	}
	done(answer)
}

func (s *Stub) PromptNumber(min, max int, label string, done func(NumberResult)) {
	var r NumberResult
	if len(s.Numbers) > 0 {
		r = s.Numbers[0]
		s.Numbers = s.Numbers[1:]
	}
	done(r)
}

// LastAlert returns the most recent alert, or nil.
func (s *Stub) LastAlert() *Request {
	if len(s.Alerts) == 0 {
		return nil
	}
	return &s.Alerts[len(s.Alerts)-1]
}
