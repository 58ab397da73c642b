package report

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kadanebench/bench"
)

type sarifLog struct {
	Version string `json:"version"`
	Runs    []struct {
		Tool struct {
			Driver struct {
				Name    string `json:"name"`
				Version string `json:"version"`
				Rules   []struct {
					ID string `json:"id"`
				} `json:"rules"`
			} `json:"driver"`
		} `json:"tool"`
		Results []struct {
			RuleID  string `json:"ruleId"`
			Level   string `json:"level"`
			Message struct {
				Text string `json:"text"`
			} `json:"message"`
		} `json:"results"`
	} `json:"runs"`
}

func TestBuildAndWrite(t *testing.T) {
	p := bench.DefaultParams()
	p.N = 1000
	p.Trials = 3
	res, err := bench.Run(context.Background(), p)
	require.NoError(t, err)

	rep, err := Build(res, "v1.2.3")
	require.NoError(t, err)
	buf := new(bytes.Buffer)
	require.NoError(t, Write(buf, rep))

	var log sarifLog
	require.NoError(t, json.Unmarshal(buf.Bytes(), &log))
	assert.Equal(t, "2.1.0", log.Version)
	require.Len(t, log.Runs, 1)
	run := log.Runs[0]
	assert.Equal(t, ToolName, run.Tool.Driver.Name)
	assert.Equal(t, "v1.2.3", run.Tool.Driver.Version)
	require.Len(t, run.Tool.Driver.Rules, 2)

	require.Len(t, run.Results, 4)
	for _, r := range run.Results[:3] {
		assert.Equal(t, TrialRule, r.RuleID)
		assert.Equal(t, "note", r.Level)
	}
	assert.Contains(t, run.Results[0].Message.Text, "seed=1083814273")
	assert.Contains(t, run.Results[0].Message.Text, "max=222")
	assert.Equal(t, TotalRule, run.Results[3].RuleID)
	assert.True(t, strings.HasPrefix(run.Results[3].Message.Text, "total=662 runs=3"))
}

func TestNormalizeVersion(t *testing.T) {
	assert.Equal(t, "v1.4.0", normalizeVersion("v1.4"))
	assert.Equal(t, "v0.3.1", normalizeVersion("v0.3.1+incompatible"))
	assert.Equal(t, develVersion, normalizeVersion("(devel)"))
	assert.Equal(t, develVersion, normalizeVersion(""))
	assert.NotEmpty(t, ToolVersion())
}
