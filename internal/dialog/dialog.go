// Package dialog defines the modal dialog contract the application
// talks to, plus a pending-request queue the terminal UI renders as an
// overlay. Resolution happens on a later key event, so confirm and
// numeric prompts take completion callbacks instead of returning values.
// Only one dialog is ever in front of the user; the rest wait in line.
package dialog

import (
	"strconv"
	"strings"
)

// Kind classifies an alert for presentation.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// NumberResult is the outcome of a numeric prompt. Value is only
// meaningful when Confirmed is true.
type NumberResult struct {
	Confirmed bool
	Value     int
}

// Service is the modal dialog contract. The terminal overlay satisfies
// it, and so does the scripted test double.
type Service interface {
	Alert(kind Kind, title, text string)
	Confirm(title, text string, done func(confirmed bool))
	PromptNumber(min, max int, label string, done func(NumberResult))
}

type requestType int

const (
	typeAlert requestType = iota
	typeConfirm
	typePrompt
)

// Request is one pending dialog. For prompts the UI edits Input in
// place and calls Accept; Invalid holds the validation message shown on
// a rejected value.
type Request struct {
	Kind    Kind
	Title   string
	Text    string
	Label   string
	Min     int
	Max     int
	Input   string
	Invalid string

	reqType   requestType
	onConfirm func(bool)
	onNumber  func(NumberResult)
}

// IsConfirm reports whether the request has yes/no buttons.
func (r *Request) IsConfirm() bool { return r.reqType == typeConfirm }

// IsPrompt reports whether the request takes a numeric value.
func (r *Request) IsPrompt() bool { return r.reqType == typePrompt }

// Queue is the Service implementation the UI drains. One request is
// active at a time; new requests line up behind it.
type Queue struct {
	pending []*Request
}

func (q *Queue) Alert(kind Kind, title, text string) {
	q.pending = append(q.pending, &Request{
		Kind:    kind,
		Title:   title,
		Text:    text,
		reqType: typeAlert,
	})
}

func (q *Queue) Confirm(title, text string, done func(bool)) {
	q.pending = append(q.pending, &Request{
		Title:     title,
		Text:      text,
		reqType:   typeConfirm,
		onConfirm: done,
	})
}

func (q *Queue) PromptNumber(min, max int, label string, done func(NumberResult)) {
	q.pending = append(q.pending, &Request{
		Label:    label,
		Min:      min,
		Max:      max,
		reqType:  typePrompt,
		onNumber: done,
	})
}

// Active returns the dialog currently in front of the user, nil when
// none is pending.
func (q *Queue) Active() *Request {
	if len(q.pending) == 0 {
		return nil
	}
	return q.pending[0]
}

func (q *Queue) pop() {
	q.pending = q.pending[1:]
}

// Accept resolves the active dialog positively: dismisses an alert,
// confirms a confirm, and submits a prompt's input. An invalid prompt
// value keeps the dialog open with a validation message instead.
func (q *Queue) Accept() {
	r := q.Active()
	if r == nil {
		return
	}
	switch r.reqType {
	case typeAlert:
		q.pop()
	case typeConfirm:
		q.pop()
		if r.onConfirm != nil {
			r.onConfirm(true)
		}
	case typePrompt:
		n, err := strconv.Atoi(strings.TrimSpace(r.Input))
		if err != nil || n < r.Min || n > r.Max {
			r.Invalid = "Enter a number between " + strconv.Itoa(r.Min) + " and " + strconv.Itoa(r.Max)
			return
		}
		q.pop()
		if r.onNumber != nil {
			r.onNumber(NumberResult{Confirmed: true, Value: n})
		}
	}
}

// Dismiss resolves the active dialog negatively: closes an alert,
// declines a confirm, cancels a prompt.
func (q *Queue) Dismiss() {
	r := q.Active()
	if r == nil {
		return
	}
	q.pop()
	switch r.reqType {
	case typeConfirm:
		if r.onConfirm != nil {
			r.onConfirm(false)
		}
	case typePrompt:
		if r.onNumber != nil {
			r.onNumber(NumberResult{})
		}
	}
}
