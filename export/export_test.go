package export_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/brownian/export"
	"github.com/katalvlaran/brownian/matrix"
	"github.com/katalvlaran/brownian/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePathSet(t *testing.T) motion.PathSet {
	t.Helper()
	rows := [][]float64{{0, 0}, {0.5, -0.25}, {1, 0.125}}
	d, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, d.Set(i, j, v))
		}
	}

	return motion.PathSet{Time: []float64{0, 0.5, 1}, Displacement: d}
}

func TestWriteWalk_CSV(t *testing.T) {
	var buf bytes.Buffer
	traj := motion.Trajectory2D{X: []float64{0, 1.5}, Y: []float64{0, -2}}
	require.NoError(t, export.WriteWalk(&buf, traj, export.CSV))
	assert.Equal(t, "step,x,y\n0,0,0\n1,1.5,-2\n", buf.String())
}

func TestWriteWalk_JSON(t *testing.T) {
	var buf bytes.Buffer
	traj := motion.Trajectory2D{X: []float64{0, 1}, Y: []float64{0, 2}}
	require.NoError(t, export.WriteWalk(&buf, traj, export.JSON))
	assert.JSONEq(t, `{"x":[0,1],"y":[0,2]}`, buf.String())
}

func TestWriteWalk_Malformed(t *testing.T) {
	var buf bytes.Buffer
	err := export.WriteWalk(&buf, motion.Trajectory2D{X: []float64{0}}, export.CSV)
	assert.ErrorIs(t, err, export.ErrMalformed)
}

func TestWritePaths_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WritePaths(&buf, samplePathSet(t), export.CSV))
	assert.Equal(t, "time,path_0,path_1\n0,0,0\n0.5,0.5,-0.25\n1,1,0.125\n", buf.String())
}

func TestWritePaths_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WritePaths(&buf, samplePathSet(t), export.JSON))

	var got struct {
		Time  []float64   `json:"time"`
		Paths [][]float64 `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []float64{0, 0.5, 1}, got.Time)
	assert.Equal(t, [][]float64{{0, 0.5, 1}, {0, -0.25, 0.125}}, got.Paths)
}

func TestWritePaths_Malformed(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, export.WritePaths(&buf, motion.PathSet{}, export.CSV), export.ErrMalformed)

	ps := samplePathSet(t)
	ps.Time = ps.Time[:2]
	assert.ErrorIs(t, export.WritePaths(&buf, ps, export.JSON), export.ErrMalformed)
}

func TestFormats(t *testing.T) {
	f, err := export.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, export.JSON, f)
	assert.Equal(t, "json", f.Ext())

	_, err = export.ParseFormat("png")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)

	var buf bytes.Buffer
	assert.ErrorIs(t, export.WriteWalk(&buf, motion.Trajectory2D{}, "xml"), export.ErrUnknownFormat)
	assert.ErrorIs(t, export.WritePaths(&buf, samplePathSet(t), "xml"), export.ErrUnknownFormat)
}
