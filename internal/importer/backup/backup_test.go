package backup_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunsachdev/regretly/internal/importer/backup"
	"github.com/arjunsachdev/regretly/internal/spend"
)

func TestParser_Parse(t *testing.T) {
	input := strings.Join([]string{
		"date,amount,category,mood,description",
		"2024-01-15,120.5,food,hungry,late night pizza",
		"2024-01-16,45,transport,tired,",
		"",
	}, "\n")

	parser := backup.NewParser()
	params, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, spend.LogParams{
		Amount:      120.5,
		Category:    spend.CategoryFood,
		Mood:        spend.MoodHungry,
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Description: "late night pizza",
	}, params[0])

	assert.Equal(t, spend.LogParams{
		Amount:   45,
		Category: spend.CategoryTransport,
		Mood:     spend.MoodTired,
		Date:     time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
	}, params[1])
}

func TestParser_Parse_ExportedFileRoundTrips(t *testing.T) {
	// The full export header, including the columns the importer ignores.
	input := strings.Join([]string{
		"id,date,amount,category,mood,type,description,created_at",
		"e2b6c0a0-0000-0000-0000-000000000001,2024-01-15,120.5,food,hungry,impulse,pizza,2024-01-15T23:30:00Z",
	}, "\n")

	parser := backup.NewParser()
	params, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 1)

	assert.Equal(t, 120.5, params[0].Amount)
	assert.Equal(t, spend.CategoryFood, params[0].Category)
	assert.Equal(t, "pizza", params[0].Description)
}

func TestParser_Parse_HeaderCaseInsensitive(t *testing.T) {
	input := "Date,Amount,Category,Mood\n2024-01-15,50,bills,stressed\n"

	parser := backup.NewParser()
	params, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, spend.CategoryBills, params[0].Category)
}

func TestParser_Parse_Errors(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		wantErr string
	}

	tests := []testCase{
		{
			name:    "EmptyFile",
			input:   "",
			wantErr: "empty file",
		},
		{
			name:    "MissingColumn",
			input:   "date,amount,category\n2024-01-15,50,food\n",
			wantErr: `missing required column "mood"`,
		},
		{
			name:    "BadDate",
			input:   "date,amount,category,mood\n15/01/2024,50,food,hungry\n",
			wantErr: "row 2: bad date",
		},
		{
			name:    "BadAmount",
			input:   "date,amount,category,mood\n2024-01-15,fifty,food,hungry\n",
			wantErr: "row 2: bad amount",
		},
		{
			name:    "UnknownCategory",
			input:   "date,amount,category,mood\n2024-01-15,50,crypto,hungry\n",
			wantErr: "row 2",
		},
		{
			name:    "UnknownMood",
			input:   "date,amount,category,mood\n2024-01-15,50,food,euphoric\n",
			wantErr: "row 2",
		},
	}

	parser := backup.NewParser()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParser_Parse_SkipsBlankRows(t *testing.T) {
	input := "date,amount,category,mood\n,,,\n2024-01-15,50,food,hungry\n"

	parser := backup.NewParser()
	params, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, params, 1)
}
