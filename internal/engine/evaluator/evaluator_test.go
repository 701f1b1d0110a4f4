package evaluator_test

import (
	"context"
	"errors"
	"io"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nonopt/internal/core/domain"
	"go.trai.ch/nonopt/internal/core/ports"
	"go.trai.ch/nonopt/internal/core/ports/mocks"
	"go.trai.ch/nonopt/internal/engine/evaluator"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	walker    *mocks.MockDirWalker
	hasher    *mocks.MockRuleHasher
	store     *mocks.MockDecisionStore
	telemetry *mocks.MockTelemetry
	vertex    *mocks.MockVertex
	logger    *mocks.MockLogger
	eval      *evaluator.Evaluator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		walker:    mocks.NewMockDirWalker(ctrl),
		hasher:    mocks.NewMockRuleHasher(ctrl),
		store:     mocks.NewMockDecisionStore(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		vertex:    mocks.NewMockVertex(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.eval = evaluator.NewEvaluator(f.walker, f.hasher, f.store, f.telemetry, f.logger)
	f.eval.SetWorkers(2)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.vertex.EXPECT().Stdout().Return(io.Discard).AnyTimes()
	return f
}

func (f *fixture) expectRecord() {
	f.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, f.vertex
		},
	).Times(1)
}

var tree = []string{
	"dom",
	"dom/other",
	"dom/webgpu",
	"dom/webgpu/ipc",
	"gfx/wgpu_bindings",
	"third_party/rust/naga/src",
}

func TestEvaluate(t *testing.T) {
	f := newFixture(t)
	flags := domain.CompileFlags{domain.OptimizeKey: {"-O2"}}

	d := f.eval.Evaluate(domain.DefaultRule(), "dom/webgpu/shader.cpp", flags)

	assert.True(t, d.Matched)
	assert.Equal(t, "dom/webgpu/", d.Prefix)
	assert.Equal(t, []string{}, flags[domain.OptimizeKey])
}

func TestEvaluate_NoMatchNoLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	eval := evaluator.NewEvaluator(nil, nil, nil, nil, log)
	flags := domain.CompileFlags{domain.OptimizeKey: {"-O2"}}

	d := eval.Evaluate(domain.DefaultRule(), "dom/other/file.cpp", flags)

	assert.False(t, d.Matched)
	assert.Equal(t, []string{"-O2"}, flags[domain.OptimizeKey])
}

func TestScan_EvaluatesAndStores(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	f.walker.EXPECT().WalkDirs("/src", []string{"obj-*"}).Return(dirs(tree...))
	f.hasher.EXPECT().RuleFingerprint(gomock.Any()).Return("fp1")
	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(len(tree))

	var stored []domain.DecisionRecord
	f.store.EXPECT().PutAll(gomock.Any()).DoAndReturn(func(recs []domain.DecisionRecord) error {
		stored = recs
		return nil
	})
	f.vertex.EXPECT().Complete(nil)

	got, err := f.eval.Scan(context.Background(), domain.DefaultRule(), "/src", evaluator.ScanOptions{
		Ignores: []string{"obj-*"},
	})
	require.NoError(t, err)

	require.Len(t, got, len(tree))
	matched := map[string]bool{}
	for i, d := range got {
		assert.Equal(t, tree[i], d.RelativeDir, "decisions are sorted by path")
		matched[d.RelativeDir] = d.Matched
	}
	assert.Equal(t, map[string]bool{
		"dom":                       false,
		"dom/other":                 false,
		"dom/webgpu":                false,
		"dom/webgpu/ipc":            true,
		"gfx/wgpu_bindings":         true,
		"third_party/rust/naga/src": true,
	}, matched)

	require.Len(t, stored, len(tree))
	for _, rec := range stored {
		assert.Equal(t, "fp1", rec.Fingerprint)
	}
}

func TestScan_ReusesStoredDecisions(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	f.walker.EXPECT().WalkDirs(gomock.Any(), gomock.Any()).Return(dirs("dom/webgpu/ipc"))
	f.hasher.EXPECT().RuleFingerprint(gomock.Any()).Return("fp1")
	f.store.EXPECT().Get("dom/webgpu/ipc").Return(&domain.DecisionRecord{
		RelativeDir: "dom/webgpu/ipc",
		Matched:     true,
		Prefix:      "dom/webgpu/",
		Fingerprint: "fp1",
	}, nil)
	f.store.EXPECT().PutAll(gomock.Any()).Times(0)
	f.vertex.EXPECT().Cached()
	f.vertex.EXPECT().Complete(nil)

	got, err := f.eval.Scan(context.Background(), domain.DefaultRule(), ".", evaluator.ScanOptions{})
	require.NoError(t, err)

	assert.Equal(t, []domain.Decision{{RelativeDir: "dom/webgpu/ipc", Matched: true, Prefix: "dom/webgpu/"}}, got)
}

func TestScan_StaleFingerprintReevaluates(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	f.walker.EXPECT().WalkDirs(gomock.Any(), gomock.Any()).Return(dirs("dom/webgpu/ipc"))
	f.hasher.EXPECT().RuleFingerprint(gomock.Any()).Return("fp2")
	f.store.EXPECT().Get("dom/webgpu/ipc").Return(&domain.DecisionRecord{
		RelativeDir: "dom/webgpu/ipc",
		Matched:     false,
		Fingerprint: "fp1",
	}, nil)
	f.store.EXPECT().PutAll(gomock.Len(1)).Return(nil)
	f.vertex.EXPECT().Complete(nil)

	got, err := f.eval.Scan(context.Background(), domain.DefaultRule(), ".", evaluator.ScanOptions{})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.True(t, got[0].Matched)
}

func TestScan_NoCacheSkipsStoreLookup(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	f.walker.EXPECT().WalkDirs(gomock.Any(), gomock.Any()).Return(dirs("gfx/wgpu_bindings"))
	f.hasher.EXPECT().RuleFingerprint(gomock.Any()).Return("fp1")
	f.store.EXPECT().Get(gomock.Any()).Times(0)
	f.store.EXPECT().PutAll(gomock.Len(1)).Return(nil)
	f.vertex.EXPECT().Complete(nil)

	_, err := f.eval.Scan(context.Background(), domain.DefaultRule(), ".", evaluator.ScanOptions{NoCache: true})
	require.NoError(t, err)
}

func TestScan_StoreReadError(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	f.walker.EXPECT().WalkDirs(gomock.Any(), gomock.Any()).Return(dirs("dom"))
	f.hasher.EXPECT().RuleFingerprint(gomock.Any()).Return("fp1")
	readErr := errors.New("disk gone")
	f.store.EXPECT().Get("dom").Return(nil, readErr)
	f.vertex.EXPECT().Complete(gomock.Not(gomock.Nil()))

	got, err := f.eval.Scan(context.Background(), domain.DefaultRule(), ".", evaluator.ScanOptions{})
	require.ErrorIs(t, err, readErr)
	assert.Nil(t, got)
}

func TestScan_StoreWriteError(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	f.walker.EXPECT().WalkDirs(gomock.Any(), gomock.Any()).Return(dirs("dom"))
	f.hasher.EXPECT().RuleFingerprint(gomock.Any()).Return("fp1")
	f.store.EXPECT().Get("dom").Return(nil, nil)
	writeErr := errors.New("read-only")
	f.store.EXPECT().PutAll(gomock.Any()).Return(writeErr)
	f.vertex.EXPECT().Complete(gomock.Not(gomock.Nil()))

	_, err := f.eval.Scan(context.Background(), domain.DefaultRule(), ".", evaluator.ScanOptions{})
	require.ErrorIs(t, err, writeErr)
}

func TestScan_Cancelled(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	f.walker.EXPECT().WalkDirs(gomock.Any(), gomock.Any()).Return(dirs(tree...))
	f.hasher.EXPECT().RuleFingerprint(gomock.Any()).Return("fp1")
	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()
	f.vertex.EXPECT().Complete(gomock.Not(gomock.Nil()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.eval.Scan(ctx, domain.DefaultRule(), ".", evaluator.ScanOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestScan_WalkError(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	walkErr := errors.New("no such directory")
	f.walker.EXPECT().WalkDirs("typo", gomock.Any()).Return(failingDirs(walkErr))
	f.hasher.EXPECT().RuleFingerprint(gomock.Any()).Return("fp1")
	f.store.EXPECT().PutAll(gomock.Any()).Times(0)
	f.vertex.EXPECT().Complete(gomock.Not(gomock.Nil()))

	got, err := f.eval.Scan(context.Background(), domain.DefaultRule(), "typo", evaluator.ScanOptions{})
	require.ErrorIs(t, err, walkErr)
	assert.Contains(t, err.Error(), "failed to walk source tree")
	assert.Nil(t, got)
}

func TestScan_WalkErrorAfterPartialTree(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	walkErr := errors.New("permission denied")
	f.walker.EXPECT().WalkDirs(gomock.Any(), gomock.Any()).Return(failingDirs(walkErr, "dom", "dom/webgpu/ipc"))
	f.hasher.EXPECT().RuleFingerprint(gomock.Any()).Return("fp1")
	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()
	f.store.EXPECT().PutAll(gomock.Any()).Times(0)
	f.vertex.EXPECT().Complete(gomock.Not(gomock.Nil()))

	got, err := f.eval.Scan(context.Background(), domain.DefaultRule(), ".", evaluator.ScanOptions{})
	require.ErrorIs(t, err, walkErr)
	assert.Nil(t, got, "a truncated walk must not be reported as a complete scan")
}

// dirs yields paths the way DirWalker does for a readable tree.
func dirs(paths ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, p := range paths {
			if !yield(p, nil) {
				return
			}
		}
	}
}

// failingDirs yields paths and then err, like a walk that hits an unreadable directory.
func failingDirs(err error, paths ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, p := range paths {
			if !yield(p, nil) {
				return
			}
		}
		yield("", err)
	}
}
