package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchFilter(t *testing.T) {
	view := ResourceView{
		Name:  "svc1",
		Type:  "AppService",
		State: "running",
	}

	tests := []struct {
		name    string
		filter  string
		want    bool
		wantErr bool
	}{
		{"empty filter matches", "", true, false},
		{"state match", `State == "running"`, true, false},
		{"state mismatch", `State == "deleted"`, false, false},
		{"combined", `Type == "AppService" && State == "running"`, true, false},
		{"name prefix", `Name startsWith "svc"`, true, false},
		{"not a boolean", `Name`, false, true},
		{"garbage", `State ==`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchFilter(tt.filter, view)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecuteTemplate(t *testing.T) {
	out, err := ExecuteTemplate(`{{ .Name | upper }}`, ResourceView{Name: "svc1"})
	assert.NoError(t, err)
	assert.Equal(t, "SVC1", out)

	_, err = ExecuteTemplate(`{{ .Missing }}`, struct{ Name string }{"x"})
	assert.Error(t, err)
}
