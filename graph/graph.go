package graph

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/pprof/profile"
)

// The node and edge construction follows the graph package of the pprof tool
// (https://github.com/google/pprof), which is not exported.

// Granularity decides whether samples are aggregated per source line or per function.
type Granularity int

const (
	Functions Granularity = iota
	Lines
)

// GetGraphFromProfile builds the call graph weighted by the profile's cpu
// (or last) sample value.
func GetGraphFromProfile(prof *profile.Profile, g Granularity) *Graph {
	valueIndex := sampleIndex(prof)

	// Create nodes
	locations := make(map[uint64][]*Node, len(prof.Location))
	nm := make(NodeMap, len(prof.Location))
	for _, l := range prof.Location {
		lines := l.Line
		if len(lines) == 0 {
			lines = []profile.Line{{}}
		}
		nodes := make([]*Node, len(lines))
		for ln := range lines {
			nodes[ln] = nm.FindOrInsertLine(l, lines[ln], g)
		}
		locations[l.ID] = nodes
	}
	nodes := nm.Nodes()
	seenNode := make(map[*Node]bool)
	seenEdge := make(map[NodePair]bool)

	for _, sample := range prof.Sample {
		if valueIndex >= len(sample.Value) {
			continue
		}
		w := sample.Value[valueIndex]
		if w == 0 {
			continue
		}
		for k := range seenNode {
			delete(seenNode, k)
		}
		for k := range seenEdge {
			delete(seenEdge, k)
		}
		var parent *Node
		residual := false

		// Locations are leaf first; walk from the root down.
		for i := len(sample.Location) - 1; i >= 0; i-- {
			locNodes := locations[sample.Location[i].ID]
			for ni := len(locNodes) - 1; ni >= 0; ni-- {
				n := locNodes[ni]
				if n == nil {
					residual = true
					continue
				}
				if !seenNode[n] {
					seenNode[n] = true
					n.Cum += w
				}
				pair := NodePair{Src: parent, Dest: n}
				if !seenEdge[pair] && parent != nil && n != parent {
					seenEdge[pair] = true
					if e := parent.Out[n]; e != nil {
						e.Weight += w
						if residual {
							e.Residual = true
						}
					} else {
						e := &Edge{Src: parent, Dest: n, Weight: w, Residual: residual, Inline: ni != len(locNodes)-1}
						parent.Out[n] = e
						n.In[parent] = e
					}
				}
				parent = n
				residual = false
			}
		}
		if parent != nil && !residual {
			parent.Flat += w
		}
	}
	return SelectNodesForGraph(nodes, true)
}

// sampleIndex picks the "cpu" value of a CPU profile, falling back to the last value.
func sampleIndex(prof *profile.Profile) int {
	for i, st := range prof.SampleType {
		if st.Type == "cpu" {
			return i
		}
	}
	if len(prof.SampleType) == 0 {
		return 0
	}
	return len(prof.SampleType) - 1
}

type NodePair struct {
	Src, Dest *Node
}

type Nodes []*Node

type Graph struct {
	Nodes Nodes
}

// Hottest returns at most n nodes, highest cumulative weight first.
func (g *Graph) Hottest(n int) Nodes {
	if n <= 0 || n > len(g.Nodes) {
		n = len(g.Nodes)
	}
	return g.Nodes[:n]
}

// FindNodesByName returns nodes whose function name contains substr.
func (g *Graph) FindNodesByName(substr string) Nodes {
	nodes := make(Nodes, 0)
	for _, n := range g.Nodes {
		if strings.Contains(n.Info.Name, substr) {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// FindNodesByLine returns nodes between the two lines, inclusive.
func (g *Graph) FindNodesByLine(line int, end int) Nodes {
	nodes := make(Nodes, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.Info.Lineno >= line && n.Info.Lineno <= end {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Total is the sum of flat weights, which equals the profile's sampled time.
func (g *Graph) Total() int64 {
	var t int64
	for _, n := range g.Nodes {
		t += n.Flat
	}
	return t
}

func SelectNodesForGraph(nodes Nodes, dropNegative bool) *Graph {
	gNodes := make(Nodes, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.Cum == 0 && n.Flat == 0 {
			continue
		}
		if dropNegative && IsNegative(n) {
			continue
		}
		gNodes = append(gNodes, n)
	}
	sortNodes(gNodes)
	return &Graph{gNodes}
}

func IsNegative(n *Node) bool {
	switch {
	case n.Flat < 0:
		return true
	case n.Flat == 0 && n.Cum < 0:
		return true
	default:
		return false
	}
}

type NodeMap map[NodeInfo]*Node

func (nm NodeMap) Nodes() Nodes {
	nodes := make(Nodes, 0, len(nm))
	for _, n := range nm {
		nodes = append(nodes, n)
	}
	return nodes
}

func (nm NodeMap) FindOrInsertLine(loc *profile.Location, line profile.Line, g Granularity) *Node {
	var objfile string
	if m := loc.Mapping; m != nil && m.File != "" {
		objfile = m.File
	}
	ni := nodeInfo(loc, line, objfile)
	if g == Functions && ni.Name != "" {
		ni.Address = 0
		ni.Lineno = 0
	}
	return nm.FindOrInsertNode(*ni)
}

func (nm NodeMap) FindOrInsertNode(info NodeInfo) *Node {
	if n, ok := nm[info]; ok {
		return n
	}
	n := &Node{
		Info: info,
		In:   make(map[*Node]*Edge),
		Out:  make(map[*Node]*Edge),
	}
	nm[info] = n
	return n
}

type Node struct {
	Info      NodeInfo
	Flat, Cum int64
	In, Out   map[*Node]*Edge
}

// Percent is the node's cumulative weight as a share of total.
func (n *Node) Percent(total int64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n.Cum) / float64(total)
}

type Edge struct {
	Src, Dest *Node
	Weight    int64
	Residual  bool
	Inline    bool
}

type NodeInfo struct {
	Name, File, Objfile string
	Address             uint64
	Lineno              int
}

func (i NodeInfo) String() string {
	if i.Name == "" {
		return fmt.Sprintf("%#x", i.Address)
	}
	if i.Lineno == 0 {
		return i.Name
	}
	return fmt.Sprintf("%s %s:%d", i.Name, filepath.Base(i.File), i.Lineno)
}

func nodeInfo(l *profile.Location, line profile.Line, objfile string) *NodeInfo {
	if line.Function == nil {
		return &NodeInfo{Address: l.Address, Objfile: objfile}
	}
	ni := &NodeInfo{
		Address: l.Address,
		Lineno:  int(line.Line),
		Name:    line.Function.Name,
	}
	if fname := line.Function.Filename; fname != "" {
		ni.File = filepath.Clean(fname)
	}
	return ni
}

type nodeSorter struct {
	rs   Nodes
	less func(l, r *Node) bool
}

func (s nodeSorter) Len() int           { return len(s.rs) }
func (s nodeSorter) Swap(i, j int)      { s.rs[i], s.rs[j] = s.rs[j], s.rs[i] }
func (s nodeSorter) Less(i, j int) bool { return s.less(s.rs[i], s.rs[j]) }

func sortNodes(ns Nodes) {
	sort.Sort(nodeSorter{ns, func(l, r *Node) bool {
		if iv, jv := abs64(l.Cum), abs64(r.Cum); iv != jv {
			return iv > jv
		}
		if iv, jv := l.Info.Name, r.Info.Name; iv != jv {
			return iv < jv
		}
		if iv, jv := abs64(l.Flat), abs64(r.Flat); iv != jv {
			return iv > jv
		}
		return l.Info.String() < r.Info.String()
	}})
}

func abs64(i int64) int64 {
	if i < 0 {
		return -i
	}
	return i
}
