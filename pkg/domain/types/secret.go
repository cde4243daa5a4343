package types

import "log/slog"

type (
	SentryDSN   string
	PostgresDSN string
)

type (
	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
)

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

func (x SentryDSN) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SentryDSN) String() string {
	return "***********"
}

func (x PostgresDSN) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x PostgresDSN) String() string {
	return "***********"
}
