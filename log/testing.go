package log

// TB is the subset of testing.TB the test logger uses.
type TB interface {
	Errorf(string, ...interface{})
	Logf(string, ...interface{})
	Helper()
}

// Testing routes log output to a test, errors fail the test.
type Testing struct {
	TB
	Default
}

func (l *Testing) Debug(m string, s ...interface{}) {
	l.Helper()
	l.Logf(tfmt("debug: ", m, s, l.Tags))
}
func (l *Testing) Warn(m string, s ...interface{}) {
	l.Helper()
	l.Logf(tfmt("warn: ", m, s, l.Tags))
}
func (l *Testing) Error(m string, s ...interface{}) {
	l.Helper()
	l.Errorf(tfmt("error: ", m, s, l.Tags))
}
func (l *Testing) With(tags ...interface{}) Logger {
	return &Testing{l.TB, *l.Default.with(tags...)}
}
