package configpkg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	config, err := Load("../../configs")
	require.NoError(t, err)

	require.Equal(t, "postgres", config.DBDriver)
	require.NotEmpty(t, config.DBSource)
	require.NotEmpty(t, config.KafkaTopic)
	require.Equal(t, 16, config.NettingGreedyThreshold)
}

func TestBrokerList(t *testing.T) {
	require.Nil(t, Config{}.BrokerList())

	c := Config{KafkaBrokers: "broker-1:9092,broker-2:9092"}
	require.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, c.BrokerList())
}
