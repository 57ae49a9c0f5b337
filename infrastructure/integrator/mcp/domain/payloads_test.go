package mcpdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexValueUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected FlexValue
		wantErr  bool
	}{
		{name: "Texto", payload: `{"v":"45%"}`, expected: "45%"},
		{name: "Inteiro", payload: `{"v":150}`, expected: "150"},
		{name: "Decimal", payload: `{"v":12.5}`, expected: "12.5"},
		{name: "Nulo", payload: `{"v":null}`, expected: ""},
		{name: "Booleano é rejeitado", payload: `{"v":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				V FlexValue `json:"v"`
			}
			err := json.Unmarshal([]byte(tt.payload), &out)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.V)
		})
	}
}

func TestEDCMetricsResponseDecode(t *testing.T) {
	payload := `{
		"metrics": {"it_growth": "45%", "tech_firms": 1250, "avg_wage": 72500, "annual_relos": 150, "jobs_created": "2,500"},
		"revenue": {"monthly_total": "$17,000", "annual_projection": "$204,000", "edc_subscription": "$2,000", "relo_kits": "$15,000"},
		"clients": [
			{"name": "Sarasota Memorial", "industry": "healthcare", "status": "active", "kits": 4},
			{"name": "Acme", "industry": null, "status": "pending", "kits": 0}
		]
	}`

	var resp EDCMetricsResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))

	require.NotNil(t, resp.Metrics)
	assert.Equal(t, FlexValue("150"), resp.Metrics.AnnualRelos)
	assert.Equal(t, FlexValue("1250"), resp.Metrics.TechFirms)
	assert.Equal(t, FlexValue("72500"), resp.Metrics.AvgWage)
	require.NotNil(t, resp.Revenue)
	assert.Equal(t, "$17,000", resp.Revenue.MonthlyTotal)
	require.Len(t, resp.Clients, 2)
	require.NotNil(t, resp.Clients[0].Industry)
	assert.Equal(t, "healthcare", *resp.Clients[0].Industry)
	assert.Nil(t, resp.Clients[1].Industry)
}
