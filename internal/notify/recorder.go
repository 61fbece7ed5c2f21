package notify

// Kind tells which report method was called.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
)

// Report is one recorded notification.
type Report struct {
	Kind    Kind
	Message string
}

// Recorder keeps every report in order. The TUI uses it to show the last
// outcome in its status line; tests use it as a spy.
type Recorder struct {
	Reports []Report
}

func (r *Recorder) add(k Kind, msg string) {
	r.Reports = append(r.Reports, Report{Kind: k, Message: msg})
}

// ReportSuccess implements Notifier.
func (r *Recorder) ReportSuccess(message string) { r.add(KindSuccess, message) }

// ReportError implements Notifier.
func (r *Recorder) ReportError(message string) { r.add(KindError, message) }

// ReportWarning implements Notifier.
func (r *Recorder) ReportWarning(message string) { r.add(KindWarning, message) }

// Last returns the most recent report, if any.
func (r *Recorder) Last() (Report, bool) {
	if len(r.Reports) == 0 {
		return Report{}, false
	}
	return r.Reports[len(r.Reports)-1], true
}

// Reset forgets all reports.
func (r *Recorder) Reset() {
	r.Reports = nil
}
