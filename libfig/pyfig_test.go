package libfig

import (
	"os"
	"path"
	"testing"

	"github.com/go-python/gpython/py"
	_ "github.com/go-python/gpython/stdlib"

	"github.com/stretchr/testify/require"
)

const pyScript = `
import _pyfig

counts = _pyfig.Enumerate(4, 0, 5)
assert len(counts) == 5, "unexpected counts length"
assert counts[0] == 1 and counts[1] == 2 and counts[2] == 6, "unexpected counts"
assert counts[3] == 19 and counts[4] == 63, "unexpected counts"

X = _pyfig.NewFigure("XX./.XX")
assert X.Size() == 4, "unexpected size"

n = _pyfig.Figures(8, 8, 3).Go()
assert n == 25, "unexpected figure total"
`

func TestPyFigModule(t *testing.T) {
	pathname := path.Join(t.TempDir(), "pyfig_test.py")
	require.NoError(t, os.WriteFile(pathname, []byte(pyScript), 0600))

	ctx := py.NewContext(py.DefaultContextOpts())
	_, err := py.RunFile(ctx, pathname, py.CompileOpts{}, nil)
	require.NoError(t, err)
	ctx.Close()
	<-ctx.Done()
}
