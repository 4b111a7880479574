package repository

import "context"

// DoctorSourceRepository fetches the upstream doctor payload, a JSON array of
// loosely shaped records.
type DoctorSourceRepository interface {
	FetchDoctors(ctx context.Context) ([]byte, error)
}

// DoctorSnapshotRepository caches the last fetched payload so a restart does
// not have to hit the upstream again. A miss is reported as (nil, nil).
type DoctorSnapshotRepository interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
}
