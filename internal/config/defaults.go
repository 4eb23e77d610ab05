package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "test_db",
}

var defaultKafka = Kafka{
	GroupID:            "rider-dispatch",
	OrdersTopic:        "orders",
	EventsTopic:        "dispatch.events",
	NotificationsTopic: "dispatch.notifications",
}

var defaultDispatch = Dispatch{
	MaxRematchAttempts: 1,
	PendingTimeout:     2 * time.Minute,
	SweepInterval:      30 * time.Second,
	SearchRadiusKm:     15,
	DefaultParcelKg:    2,
	OperationTimeout:   3 * time.Second,
}

var defaultPricing = Pricing{
	BaseFee: 2.5,
	PerKm:   0.8,
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       1,
	Burst:      5,
	TTL:        10 * time.Minute,
	MaxBuckets: 100_000,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default Kafka settings. Brokers are empty, so Kafka is off.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultDispatch returns the default dispatch policy.
func DefaultDispatch() Dispatch {
	return defaultDispatch
}

// DefaultPricing returns the default earnings coefficients.
func DefaultPricing() Pricing {
	return defaultPricing
}

// DefaultRateLimit returns the default location ping limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
