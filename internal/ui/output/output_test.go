package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/kitfetch/internal/ui/output"
)

func TestColorProfile(t *testing.T) {
	// NO_COLOR forces the Ascii profile
	t.Setenv("NO_COLOR", "1")
	p := output.ColorProfile()
	assert.Equal(t, termenv.Ascii, p, "NO_COLOR should force Ascii profile")

	// Without NO_COLOR the environment decides; just verify the range
	t.Setenv("NO_COLOR", "")
	p = output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestInteractive(t *testing.T) {
	t.Run("plain writer is not interactive", func(t *testing.T) {
		assert.False(t, output.Interactive(new(bytes.Buffer)))
	})

	t.Run("regular file is not interactive", func(t *testing.T) {
		f, err := os.Create(filepath.Join(t.TempDir(), "out"))
		if err != nil {
			t.Fatal(err)
		}
		defer func() {
			_ = f.Close()
		}()

		assert.False(t, output.Interactive(f))
	})

	t.Run("ci disables interactivity", func(t *testing.T) {
		t.Setenv("CI", "true")
		assert.False(t, output.Interactive(os.Stderr))
	})
}

func TestNew_Nil(t *testing.T) {
	// Should default to stderr, we just check it doesn't panic
	out := output.New(nil)
	assert.NotNil(t, out)
}
