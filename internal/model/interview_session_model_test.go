package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadarChartRoundTrip(t *testing.T) {
	chart := map[string]int{
		"professional_knowledge": 80,
		"communication":          72,
	}

	var session InterviewSession
	require.NoError(t, session.SetRadarChart(chart))

	got, err := session.RadarChart()
	require.NoError(t, err)
	assert.Equal(t, chart, got)
}

func TestRadarChartEmpty(t *testing.T) {
	var session InterviewSession

	got, err := session.RadarChart()
	require.NoError(t, err)
	assert.Nil(t, got)
}
