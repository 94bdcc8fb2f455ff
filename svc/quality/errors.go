package quality

import "errors"

var (
	ErrScanFailed    = errors.New("data-quality scan failed")
	ErrCountFailed   = errors.New("data-quality count failed")
	ErrSummaryFailed = errors.New("data-quality summary failed")
)
