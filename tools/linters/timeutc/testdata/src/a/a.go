package a

import "time"

type clock struct {
	now func() time.Time
}

func createdAt() time.Time {
	return time.Now() // want "time.Now\\(\\) should be followed by .UTC\\(\\) for timezone consistency"
}

func updatedAt() time.Time {
	return time.Now().UTC()
}

func stored() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func injected() clock {
	// A function value is not a call.
	return clock{now: time.Now}
}

func viaField(c clock) time.Time {
	return c.now().UTC()
}

func localThenConverted() time.Time {
	t := time.Now() // want "time.Now\\(\\) should be followed by .UTC\\(\\) for timezone consistency"
	return t.UTC()
}

func nolintGeneral() {
	//nolint
	_ = time.Now()
}

func nolintSpecific() {
	_ = time.Now() //nolint:timeutc
}

func nolintList() {
	_ = time.Now() //nolint:errcheck,timeutc
}

func nolintOtherLinter() {
	_ = time.Now() //nolint:otherlinter // want "time.Now\\(\\) should be followed by .UTC\\(\\) for timezone consistency"
}
