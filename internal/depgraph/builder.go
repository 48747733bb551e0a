package depgraph

import (
	"context"
	"sort"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/depscope/depscope/internal/models"
)

// ManifestReader retrieves one installed dependency's parsed manifest.
type ManifestReader interface {
	Read(ctx context.Context, name string) (models.ManifestRecord, error)
}

// Build constructs the declared-dependency graph for the given installed
// dependency names. Manifest reads are issued concurrently and collected
// before any graph mutation; all insertion happens on this goroutine. The
// first failure aborts the whole construction with no partial graph.
func Build(ctx context.Context, names []string, reader ManifestReader) (*Graph, error) {
	records := make([]models.ManifestRecord, len(names))

	eg, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		eg.Go(func() error {
			record, err := reader.Read(ctx, name)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	g := newGraph()

	real, err := registerReal(g, records)
	if err != nil {
		return nil, err
	}
	if err := registerImplied(g, real); err != nil {
		return nil, err
	}
	if err := link(g, real); err != nil {
		return nil, err
	}

	return g, nil
}

// registerReal adds one real node per installed manifest, keyed by the
// manifest's name and resolved version. Installation guarantees no two
// installed manifests share an identity; the registrar trusts that.
func registerReal(g *Graph, records []models.ManifestRecord) ([]models.DependencyNode, error) {
	nodes := make([]models.DependencyNode, 0, len(records))

	for _, record := range records {
		version := record.ResolvedVersion()
		if version == models.VersionUnknown {
			log.WithField("dependency", record.Name).
				Warn("manifest carries no recognized version field")
		}

		node := models.DependencyNode{
			Identity: models.DependencyIdentity{Name: record.Name, Version: version},
			Kind:     models.NodeReal,
			Manifest: &record,
		}
		if err := g.addNode(node); err != nil {
			return nil, err
		}
		nodes = append(nodes, node)

		log.WithFields(log.Fields{
			"dependency": record.Name,
			"version":    version,
		}).Debug("registered installed dependency")
	}

	return nodes, nil
}

// registerImplied walks every real node's declared dependencies and adds
// an implied node for each (name, range) pair whose range string is not
// already an alias of that name. Satisfaction is exact string equality;
// a real node at "2.3.1" does not satisfy a declared "^2.0.0". Implied
// nodes have no manifest, so this is a single pass with nothing further
// to expand.
func registerImplied(g *Graph, real []models.DependencyNode) error {
	aliases := make(map[string]map[string]bool)
	for _, node := range real {
		byName := aliases[node.Identity.Name]
		if byName == nil {
			byName = make(map[string]bool)
			aliases[node.Identity.Name] = byName
		}
		byName[node.Identity.Version] = true
	}

	for _, node := range real {
		for _, dep := range declaredPairs(node) {
			if aliases[dep.Name][dep.Version] {
				continue
			}
			if _, ok := g.nodes[dep.Key()]; ok {
				// Another node already implied this exact pair.
				continue
			}
			implied := models.DependencyNode{Identity: dep, Kind: models.NodeImplied}
			if err := g.addNode(implied); err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"dependency": dep.Name,
				"required":   dep.Version,
			}).Debug("registered implied dependency")
		}
	}

	return nil
}

// link creates one edge per declared (name, range) pair, from the
// declaring node to the node with exactly that identity. The implied pass
// guarantees every target exists, which is why linking runs last.
func link(g *Graph, real []models.DependencyNode) error {
	for _, node := range real {
		for _, dep := range declaredPairs(node) {
			if err := g.addEdge(node.Identity, dep); err != nil {
				return err
			}
		}
	}
	return nil
}

// declaredPairs returns a node's declared dependencies as identities, in
// name order so construction is deterministic.
func declaredPairs(node models.DependencyNode) []models.DependencyIdentity {
	if node.Manifest == nil {
		return nil
	}

	names := make([]string, 0, len(node.Manifest.Requires))
	for name := range node.Manifest.Requires {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]models.DependencyIdentity, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, models.DependencyIdentity{
			Name:    name,
			Version: node.Manifest.Requires[name],
		})
	}
	return pairs
}
