package listing

import "strconv"

var sizeUnits = [...]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// FormatSize renders a byte count with three significant digits and a
// binary unit, e.g. 1536 -> "1.5 KiB". EiB is the largest unit; bigger
// values keep growing in it.
func FormatSize(nbytes float64) string {
	unit := 0
	for unit < len(sizeUnits)-1 && nbytes >= 1024 {
		nbytes /= 1024
		unit++
	}
	return strconv.FormatFloat(nbytes, 'g', 3, 64) + " " + sizeUnits[unit]
}
