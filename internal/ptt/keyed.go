package ptt

// Keyed keys drv for the duration of fn, always unkeying even if fn
// panics or returns an error.
func Keyed(drv Driver, fn func() error) error {
	if err := drv.On(); err != nil {
		return err
	}
	defer drv.Off()

	return fn()
}
