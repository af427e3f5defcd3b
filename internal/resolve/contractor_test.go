package resolve

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldlog/fieldlog/internal/entity"
)

func contractor(name string) entity.Contractor {
	return entity.Contractor{ID: uuid.New(), Name: name}
}

func TestContractorRecordIDKeyedMap(t *testing.T) {
	c := contractor("Apex Steel")
	ai := map[string]any{
		"activities": map[string]any{
			c.ID.String(): map[string]any{"description": "erected columns"},
		},
	}
	rec := ContractorRecord(ai, "activities", c)
	require.NotNil(t, rec)
	assert.Equal(t, "erected columns", rec["description"])
}

func TestContractorRecordNameKeyedMapIsCaseInsensitive(t *testing.T) {
	c := contractor("Apex Steel")
	ai := map[string]any{
		"activities": map[string]any{
			"APEX STEEL": map[string]any{"description": "erected columns"},
		},
	}
	rec := ContractorRecord(ai, "activities", c)
	require.NotNil(t, rec)
	assert.Equal(t, "erected columns", rec["description"])
}

func TestContractorRecordListPrefersIDOverName(t *testing.T) {
	c := contractor("Apex Steel")
	ai := map[string]any{
		"operations": []any{
			map[string]any{"contractorName": "Apex Steel", "workers": float64(4)},
			map[string]any{"contractorId": c.ID.String(), "workers": float64(9)},
		},
	}
	rec := ContractorRecord(ai, "operations", c)
	require.NotNil(t, rec)
	assert.Equal(t, float64(9), rec["workers"])
}

func TestContractorRecordListNameFallback(t *testing.T) {
	c := contractor("Apex Steel")
	ai := map[string]any{
		"operations": []any{
			map[string]any{"contractorName": "apex steel", "workers": float64(4)},
		},
	}
	rec := ContractorRecord(ai, "operations", c)
	require.NotNil(t, rec)
	assert.Equal(t, float64(4), rec["workers"])
}

func TestContractorRecordNoMatch(t *testing.T) {
	c := contractor("Apex Steel")
	ai := map[string]any{
		"operations": []any{
			map[string]any{"contractorName": "Borealis Electric"},
		},
	}
	assert.Nil(t, ContractorRecord(ai, "operations", c))
	assert.Nil(t, ContractorRecord(ai, "missing", c))
	assert.Nil(t, ContractorRecord(nil, "operations", c))
}

func TestContractorValueTiering(t *testing.T) {
	c := contractor("Apex Steel")
	editKey := "activity_" + c.ID.String()
	src := Sources{
		UserEdits: map[string]any{editKey: "user wording"},
		AI: map[string]any{
			"activities": map[string]any{
				c.ID.String(): map[string]any{"description": "ai wording"},
			},
		},
	}
	assert.Equal(t, "user wording", ContractorValue(src, "activities", c, editKey, "description", ""))

	delete(src.UserEdits, editKey)
	assert.Equal(t, "ai wording", ContractorValue(src, "activities", c, editKey, "description", ""))

	src.AI = nil
	assert.Equal(t, "No work reported", ContractorValue(src, "activities", c, editKey, "description", "No work reported"))
}

func TestRosterMatch(t *testing.T) {
	roster := []entity.Contractor{
		contractor("Apex Steel"),
		contractor("Borealis Electric"),
	}
	m := RosterMatch(roster, "borealis electric")
	require.NotNil(t, m)
	assert.Equal(t, "Borealis Electric", m.Name)

	assert.Nil(t, RosterMatch(roster, "Borealis"))
	assert.Nil(t, RosterMatch(roster, ""))
}
