package events

import "github.com/atomicstack/tabdeck/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Acquire(width, height int) {
	logging.Trace("session.acquire", map[string]interface{}{"width": width, "height": height})
}

func (SessionTracer) AcquireError(step string, err error) {
	logging.Trace("session.acquire.error", map[string]interface{}{"step": step, "error": errString(err)})
}

func (SessionTracer) Release() {
	logging.Trace("session.release", nil)
}

func (SessionTracer) ReleaseError(err error) {
	logging.Trace("session.release.error", map[string]interface{}{"error": errString(err)})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
