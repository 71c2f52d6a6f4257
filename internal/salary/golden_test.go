package salary

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type goldenCase struct {
	Profile Profile `json:"profile"`
	Expect  Result  `json:"expect"`
}

func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "golden", "*.json"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		file := file
		t.Run(filepath.Base(file), func(t *testing.T) {
			data, err := os.ReadFile(file)
			require.NoError(t, err)

			var tc goldenCase
			require.NoError(t, json.Unmarshal(data, &tc))

			assert.Equal(t, tc.Expect, Calculate(tc.Profile))
		})
	}
}
