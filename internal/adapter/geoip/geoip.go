// Package geoip resolves client IPs to the location metadata attached to clicks.
package geoip

import (
	"fmt"
	"log/slog"
	"net"

	"github.com/oschwald/geoip2-golang"
	"github.com/vadimbarashkov/linkstats/internal/entity"
)

// Locator looks up IPs in a MaxMind City database. A Locator without a
// database returns no location for every IP.
type Locator struct {
	reader *geoip2.Reader
	logger *slog.Logger
}

// Open loads the database at path. An empty path disables lookups.
func Open(path string, logger *slog.Logger) (*Locator, error) {
	const op = "adapter.geoip.Open"

	if path == "" {
		logger.Warn("geoip database path is empty, location lookups are disabled")
		return &Locator{logger: logger}, nil
	}

	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open database: %w", op, err)
	}

	logger.Info("geoip database loaded", slog.String("path", path), slog.Uint64("build_epoch", uint64(reader.Metadata().BuildEpoch)))

	return &Locator{
		reader: reader,
		logger: logger,
	}, nil
}

func (l *Locator) Locate(ip string) entity.Location {
	if l.reader == nil {
		return nil
	}

	addr := net.ParseIP(ip)
	if addr == nil || addr.IsLoopback() || addr.IsPrivate() || addr.IsUnspecified() {
		return nil
	}

	record, err := l.reader.City(addr)
	if err != nil {
		l.logger.Error("geoip lookup failed", slog.String("ip", ip), slog.Any("err", err))
		return nil
	}

	loc := entity.Location{}

	if record.Country.IsoCode != "" {
		loc["country_code"] = record.Country.IsoCode
	}
	if name, ok := record.Country.Names["en"]; ok {
		loc["country"] = name
	}
	if len(record.Subdivisions) > 0 {
		if name, ok := record.Subdivisions[0].Names["en"]; ok {
			loc["region"] = name
		}
	}
	if name, ok := record.City.Names["en"]; ok {
		loc["city"] = name
	}
	if record.Location.Latitude != 0 || record.Location.Longitude != 0 {
		loc["latitude"] = record.Location.Latitude
		loc["longitude"] = record.Location.Longitude
	}

	if len(loc) == 0 {
		return nil
	}

	return loc
}

func (l *Locator) Close() error {
	if l.reader == nil {
		return nil
	}
	return l.reader.Close()
}
