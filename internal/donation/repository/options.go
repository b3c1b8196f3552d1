package repository

// FingerprintOptions bounds a fingerprint scan. Values are "YYYY-MM-DD HH:MM:SS".
type FingerprintOptions struct {
	Start   string
	ScanEnd string
}

// RangeOptions is an inclusive payment_date window. Values are "YYYY-MM-DD HH:MM:SS".
type RangeOptions struct {
	Start string
	End   string
}

type TopOptions struct {
	Start string
	End   string
	Limit int
}
