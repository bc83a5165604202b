package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

// Format is how a snapshot is serialized on disk
type Format string

// Format constants
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

var funcCount = make(map[string]int)

// ValidateSnapshot performs snapshot testing against testdata/<func>-<call>.json
// If the snapshot file does not exist yet, it is written and the check passes.
func ValidateSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()
	validate(t, JSON, obj, depth+1, msgAndArgs...)
}

// ValidateYAMLSnapshot is ValidateSnapshot for a YAML snapshot
func ValidateYAMLSnapshot(t *testing.T, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()
	validate(t, YAML, obj, depth+1, msgAndArgs...)
}

func validate(t *testing.T, format Format, obj interface{}, depth int, msgAndArgs ...interface{}) {
	t.Helper()
	skip := 1 + depth

	pc, _, _, _ := runtime.Caller(skip)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	call := funcCount[funcName]
	funcCount[funcName] = call + 1

	filename := filepath.Join("testdata", fmt.Sprintf("%s-%d.%s", funcName, call, format))

	actual, err := encode(format, obj)
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			create(t, filename, actual)
			return
		}

		t.Fatalf("could not read snapshot: %v", err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(actual), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func encode(format Format, obj interface{}) ([]byte, error) {
	if format == YAML {
		return yaml.Marshal(obj)
	}

	return json.MarshalIndent(obj, "", "  ")
}

func create(t *testing.T, filename string, data []byte) {
	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatalf("could not create snapshot directory: %v", err)
	}

	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil { // nolint:gosec
		t.Fatalf("could not write snapshot: %v", err)
	}
}
