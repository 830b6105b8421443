package artifacts

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/yieldx-network/yieldx-deploy/internal/domain"
	"github.com/yieldx-network/yieldx-deploy/internal/domain/config"
	"github.com/yieldx-network/yieldx-deploy/internal/usecase"
)

const maxSuggestions = 3

// Resolver finds compiled artifacts in Hardhat (artifacts/) and Foundry (out/)
// build directories
type Resolver struct {
	projectRoot string
	searchDirs  []string
	source      string
	log         *slog.Logger

	mu      sync.Mutex
	index   map[string][]string // key: contract name, value: artifact files
	indexed bool
}

// NewResolver creates a resolver over the configured artifact directories
func NewResolver(cfg *config.RuntimeConfig, log *slog.Logger) *Resolver {
	var dirs []string
	if cfg.ArtifactsDir != "" {
		dirs = append(dirs, cfg.ArtifactsDir)
	} else {
		outDir := cfg.FoundryConfig.OutDir()
		if outDir == "" {
			outDir = "out"
		}
		dirs = append(dirs,
			filepath.Join(cfg.ProjectRoot, "artifacts"),
			filepath.Join(cfg.ProjectRoot, outDir),
		)
	}

	return &Resolver{
		projectRoot: cfg.ProjectRoot,
		searchDirs:  lo.Uniq(dirs),
		source:      cfg.ContractSource,
		log:         log,
	}
}

// ResolveArtifact returns the deployable artifact for a contract. The name may
// be bare ("YieldXNetwork") or fully qualified ("contracts/YieldXNetwork.sol:YieldXNetwork").
// A bare name is narrowed to the configured contract source, if any.
func (r *Resolver) ResolveArtifact(ctx context.Context, name string) (*domain.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source, contractName := splitQualifiedName(name)
	if source == "" {
		source = r.source
	}

	index, err := r.buildIndex(ctx)
	if err != nil {
		return nil, &domain.ArtifactResolutionError{Name: name, Err: err}
	}

	paths := index[contractName]
	if len(paths) == 0 {
		return nil, &domain.ArtifactResolutionError{
			Name:        name,
			Suggestions: suggest(contractName, lo.Keys(index)),
			Err:         fmt.Errorf("%w in %s", domain.ErrArtifactNotFound, strings.Join(r.relDirs(), ", ")),
		}
	}

	type candidate struct {
		artifact *domain.Artifact
		bytecode string
	}

	var candidates []candidate
	for _, path := range paths {
		artifact, bytecode, err := loadArtifact(path)
		if err != nil {
			return nil, &domain.ArtifactResolutionError{Name: name, Err: err}
		}
		if artifact.Name != contractName {
			r.log.Debug("skipping artifact with mismatched contract name", "path", path, "contract", artifact.Name)
			continue
		}
		if source != "" && artifact.SourceName != source {
			continue
		}
		artifact.Path = r.rel(path)
		candidates = append(candidates, candidate{artifact: artifact, bytecode: bytecode})
	}

	// Hardhat and Foundry output may coexist; identical sources are the same contract
	candidates = lo.UniqBy(candidates, func(c candidate) string {
		return c.artifact.FullyQualifiedName()
	})

	switch len(candidates) {
	case 0:
		err := domain.ErrArtifactNotFound
		if source != "" {
			err = fmt.Errorf("%w in source %s", domain.ErrArtifactNotFound, source)
		}
		return nil, &domain.ArtifactResolutionError{Name: name, Err: err}
	case 1:
	default:
		return nil, &domain.ArtifactResolutionError{
			Name: name,
			Candidates: lo.Map(candidates, func(c candidate, _ int) string {
				return c.artifact.FullyQualifiedName()
			}),
			Err: fmt.Errorf("%w: set --contract-source or YIELDX_CONTRACT_SOURCE to one of the candidate sources", domain.ErrAmbiguousArtifact),
		}
	}

	artifact := candidates[0].artifact
	bytecode, err := decodeBytecode(candidates[0].bytecode)
	if err != nil {
		return nil, &domain.ArtifactResolutionError{Name: name, Err: fmt.Errorf("%s: %w", artifact.Path, err)}
	}
	artifact.Bytecode = bytecode

	r.log.Debug("resolved artifact", "contract", artifact.FullyQualifiedName(), "path", artifact.Path, "format", artifact.Format)
	return artifact, nil
}

// buildIndex walks the search directories once and maps file base names to paths
func (r *Resolver) buildIndex(ctx context.Context) (map[string][]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexed {
		return r.index, nil
	}

	index := make(map[string][]string)
	found := false

	for _, dir := range r.searchDirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		found = true

		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			if d.IsDir() {
				if d.Name() == "build-info" || d.Name() == "cache" {
					return filepath.SkipDir
				}
				return nil
			}

			base := d.Name()
			if filepath.Ext(base) != ".json" || strings.HasSuffix(base, ".dbg.json") {
				return nil
			}

			name := strings.TrimSuffix(base, ".json")
			index[name] = append(index[name], path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: no build output in %s (compile the contracts first)",
			domain.ErrArtifactNotFound, strings.Join(r.relDirs(), ", "))
	}

	for name := range index {
		sort.Strings(index[name])
	}

	r.index = index
	r.indexed = true
	return index, nil
}

func (r *Resolver) rel(path string) string {
	if rel, err := filepath.Rel(r.projectRoot, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

func (r *Resolver) relDirs() []string {
	return lo.Map(r.searchDirs, func(dir string, _ int) string { return r.rel(dir) })
}

// splitQualifiedName splits "path/To.sol:Name" into source and contract name
func splitQualifiedName(name string) (source, contract string) {
	if idx := strings.LastIndex(name, ":"); idx != -1 {
		return name[:idx], name[idx+1:]
	}
	return "", name
}

// suggest ranks known contract names against the requested one. Names that
// extend the request (YieldX -> YieldXNetwork) rank first, then names the
// request extends (YieldXNetworkV2 -> YieldXNetwork).
func suggest(name string, known []string) []string {
	sort.Strings(known)

	var ranked []string
	for _, m := range fuzzy.Find(name, known) {
		ranked = append(ranked, m.Str)
	}
	for _, k := range known {
		if len(fuzzy.Find(k, []string{name})) > 0 {
			ranked = append(ranked, k)
		}
	}

	ranked = lo.Uniq(lo.Without(ranked, name))
	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}
	return ranked
}

// Ensure the resolver implements the port
var _ usecase.ArtifactResolver = (*Resolver)(nil)
