package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ajitpratap0/nova/pkg/config"
	"github.com/ajitpratap0/nova/pkg/errors"
)

// fakeSource returns a fixed decoded tree.
type fakeSource struct {
	tree    interface{}
	loadErr error
}

func (s *fakeSource) Initialize(ctx context.Context, cfg *config.BaseConfig) error { return nil }
func (s *fakeSource) Load(ctx context.Context) (interface{}, error)               { return s.tree, s.loadErr }
func (s *fakeSource) Health(ctx context.Context) error                            { return nil }
func (s *fakeSource) Close(ctx context.Context) error                             { return nil }

// fakeDestination records what was written.
type fakeDestination struct {
	header   []string
	rows     [][]string
	writeErr error
}

func (d *fakeDestination) Initialize(ctx context.Context, cfg *config.BaseConfig) error { return nil }
func (d *fakeDestination) Write(ctx context.Context, header []string, rows [][]string) error {
	if d.writeErr != nil {
		return d.writeErr
	}
	d.header = header
	d.rows = rows
	return nil
}
func (d *fakeDestination) Health(ctx context.Context) error { return nil }
func (d *fakeDestination) Close(ctx context.Context) error  { return nil }

func testConfig() *config.BaseConfig {
	cfg := config.NewBaseConfig("test", "conversion")
	cfg.Source.Path = "in.json"
	cfg.Output.Path = "out.csv"
	return cfg
}

func newTestConverter(t *testing.T, tree interface{}, cfg *config.BaseConfig) (*Converter, *fakeDestination) {
	t.Helper()
	dest := &fakeDestination{}
	converter, err := NewConverter(&fakeSource{tree: tree}, dest, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	return converter, dest
}

func TestRunSingleObject(t *testing.T) {
	tree := map[string]interface{}{
		"id": 1,
		"user": map[string]interface{}{
			"name": "John",
			"city": "Boston",
		},
	}

	converter, dest := newTestConverter(t, tree, testConfig())
	require.NoError(t, converter.Run(context.Background()))

	assert.Equal(t, []string{"id", "user.city", "user.name"}, dest.header)
	require.Len(t, dest.rows, 1)
	assert.Equal(t, []string{"1", "Boston", "John"}, dest.rows[0])
}

func TestRunArrayOfObjects(t *testing.T) {
	tree := []interface{}{
		map[string]interface{}{"a": 1},
		map[string]interface{}{"b": 2},
	}

	converter, dest := newTestConverter(t, tree, testConfig())
	require.NoError(t, converter.Run(context.Background()))

	assert.Equal(t, []string{"a", "b"}, dest.header)
	require.Len(t, dest.rows, 2)
	assert.Equal(t, []string{"1", ""}, dest.rows[0])
	assert.Equal(t, []string{"", "2"}, dest.rows[1])
}

func TestRunWrapsNonObjectElements(t *testing.T) {
	tree := []interface{}{
		map[string]interface{}{"value": "from-object"},
		"bare string",
		42,
	}

	converter, dest := newTestConverter(t, tree, testConfig())
	require.NoError(t, converter.Run(context.Background()))

	assert.Equal(t, []string{"value"}, dest.header)
	require.Len(t, dest.rows, 3)
	assert.Equal(t, []string{"from-object"}, dest.rows[0])
	assert.Equal(t, []string{"bare string"}, dest.rows[1])
	assert.Equal(t, []string{"42"}, dest.rows[2])
}

func TestRunRejectsScalarTopLevel(t *testing.T) {
	converter, _ := newTestConverter(t, "just a string", testConfig())

	err := converter.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeInvalidShape))
}

func TestRunEmptyArray(t *testing.T) {
	converter, _ := newTestConverter(t, []interface{}{}, testConfig())

	err := converter.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeEmptyInput))
}

func TestRunPropagatesLoadError(t *testing.T) {
	loadErr := errors.New(errors.ErrorTypeParse, "bad json")
	dest := &fakeDestination{}
	converter, err := NewConverter(&fakeSource{loadErr: loadErr}, dest, testConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)

	err = converter.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeParse))
}

func TestRunWithExplodeField(t *testing.T) {
	tree := []interface{}{
		map[string]interface{}{
			"id": 1,
			"contacts": []interface{}{
				map[string]interface{}{"type": "email", "value": "a@example.com"},
				map[string]interface{}{"type": "phone", "value": "555"},
			},
		},
	}

	cfg := testConfig()
	cfg.Flatten.ExplodeField = "contacts"

	converter, dest := newTestConverter(t, tree, cfg)
	require.NoError(t, converter.Run(context.Background()))

	assert.Equal(t, []string{"id", "type", "value"}, dest.header)
	require.Len(t, dest.rows, 2)
	assert.Equal(t, []string{"1", "email", "a@example.com"}, dest.rows[0])
	assert.Equal(t, []string{"1", "phone", "555"}, dest.rows[1])
}

func TestRunExplodeEmptyArrayDropsRecord(t *testing.T) {
	tree := []interface{}{
		map[string]interface{}{"id": 1, "tags": []interface{}{}},
		map[string]interface{}{"id": 2, "tags": []interface{}{"x"}},
	}

	cfg := testConfig()
	cfg.Flatten.ExplodeField = "tags"

	converter, dest := newTestConverter(t, tree, cfg)
	require.NoError(t, converter.Run(context.Background()))

	require.Len(t, dest.rows, 1)
	assert.Equal(t, []string{"2", "x"}, dest.rows[0])

	m := converter.Metrics()
	assert.Equal(t, int64(2), m["records_in"])
	assert.Equal(t, int64(1), m["records_dropped"])
	assert.Equal(t, int64(1), m["rows_out"])
}

func TestRunExplodeAllRecordsDropped(t *testing.T) {
	tree := []interface{}{
		map[string]interface{}{"id": 1, "tags": []interface{}{}},
	}

	cfg := testConfig()
	cfg.Flatten.ExplodeField = "tags"

	converter, _ := newTestConverter(t, tree, cfg)
	err := converter.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeEmptyInput))
}

func TestRunColumnsPolicy(t *testing.T) {
	tree := map[string]interface{}{
		"id":   1,
		"tags": []interface{}{"a", "b"},
	}

	cfg := testConfig()
	cfg.Flatten.Policy = config.PolicyColumns

	converter, dest := newTestConverter(t, tree, cfg)
	require.NoError(t, converter.Run(context.Background()))

	assert.Equal(t, []string{"id", "tags_0", "tags_1"}, dest.header)
	require.Len(t, dest.rows, 1)
	assert.Equal(t, []string{"1", "a", "b"}, dest.rows[0])
}

func TestNewConverterRejectsUnknownPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.Flatten.Policy = "bogus"

	_, err := NewConverter(&fakeSource{}, &fakeDestination{}, cfg, nil)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestMetricsReportsRunStatistics(t *testing.T) {
	tree := []interface{}{
		map[string]interface{}{"a": 1},
		map[string]interface{}{"b": 2},
	}

	converter, _ := newTestConverter(t, tree, testConfig())
	require.NoError(t, converter.Run(context.Background()))

	m := converter.Metrics()
	assert.Equal(t, int64(2), m["records_in"])
	assert.Equal(t, int64(2), m["rows_out"])
	assert.Equal(t, 2, m["columns"])
	assert.Equal(t, "dot", m["policy"])
}
