package a

import wall "time"

func aliased() wall.Time {
	return wall.Now() // want "time.Now\\(\\) should be followed by .UTC\\(\\) for timezone consistency"
}

func aliasedGood() wall.Time {
	return wall.Now().UTC()
}
