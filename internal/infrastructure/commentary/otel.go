package commentary

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/younwookim/striker/internal/infrastructure/commentary"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
