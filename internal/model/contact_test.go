package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContact_Status(t *testing.T) {
	tests := []struct {
		name   string
		issues []string
		want   Status
	}{
		{"no issues", nil, StatusValid},
		{"missing name", []string{IssueMissingName}, StatusError},
		{"missing contact method", []string{IssueMissingReach}, StatusError},
		{"invalid email only", []string{IssueBadEmail}, StatusWarning},
		{"invalid phone only", []string{IssueBadPhone}, StatusWarning},
		{"duplicate only", []string{IssueDuplicate}, StatusWarning},
		{"format problem plus missing", []string{IssueBadEmail, IssueMissingName}, StatusError},
		{"duplicate plus invalid phone", []string{IssueDuplicate, IssueBadPhone}, StatusWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Contact{Issues: tt.issues}
			assert.Equal(t, tt.want, c.Status())
		})
	}
}

func TestContact_AddIssue_PreservesOrder(t *testing.T) {
	c := &Contact{}
	c.AddIssue(IssueDuplicate)
	c.AddIssue(IssueBadEmail)
	assert.Equal(t, []string{IssueDuplicate, IssueBadEmail}, c.Issues)
	assert.True(t, c.HasIssue(IssueDuplicate))
	assert.False(t, c.HasIssue(IssueMissingName))
}

func TestContact_MarshalJSON_IncludesDerivedStatus(t *testing.T) {
	c := Contact{ID: 1, Name: "Ali", Email: "ali@x.com"}
	data, err := json.Marshal(c)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"status":"valid"`)
	assert.Contains(t, string(data), `"issues":[]`)

	c.AddIssue(IssueMissingReach)
	data, err = json.Marshal(c)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"status":"error"`)
}

func TestArabicStatus(t *testing.T) {
	assert.Equal(t, "صحيح", ArabicStatus(StatusValid))
	assert.Equal(t, "تحذير", ArabicStatus(StatusWarning))
	assert.Equal(t, "خطأ", ArabicStatus(StatusError))
}
