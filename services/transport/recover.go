package transport

import (
	"airdrums-go/errcode"
)

// ensureConfigured verifies the serial engine is enabled and in master
// role, and rebuilds it in place if not. Transient electrical glitches on
// the bus are expected to knock the engine out of configuration; the
// sequence here (disable, drain the busy flag bounded, write the full
// configuration while disabled, re-enable, verify) restores it without
// halting the device. Already-configured engines are left untouched.
func (t *Transport) ensureConfigured() error {
	if t.eng.Enabled() && t.eng.Master() {
		return nil
	}
	t.log.Warn().Msg("serial engine misconfigured, recovering")

	t.eng.Disable()
	drained := false
	for i := 0; i < t.cfg.DrainBound; i++ {
		if !t.eng.Busy() {
			drained = true
			break
		}
	}
	if !drained {
		return &errcode.E{C: errcode.EngineFault, Op: "recover", Msg: "busy flag never cleared"}
	}

	if err := t.eng.Configure(t.cfg.Engine); err != nil {
		return &errcode.E{C: errcode.EngineFault, Op: "recover", Err: err}
	}
	t.eng.Enable()

	if !t.eng.Enabled() || !t.eng.Master() {
		return &errcode.E{C: errcode.EngineFault, Op: "recover", Msg: "verify after re-enable failed"}
	}
	t.log.Info().Msg("serial engine recovered")
	return nil
}
