// Package mcp provides an MCP (Model Context Protocol) server for lx.
// This allows AI tutors to query the concept graph through MCP tools
// instead of CLI commands.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hargabyte/lx/internal/cluster"
	"github.com/hargabyte/lx/internal/concept"
	"github.com/hargabyte/lx/internal/config"
	"github.com/hargabyte/lx/internal/gaps"
	"github.com/hargabyte/lx/internal/output"
	"github.com/hargabyte/lx/internal/pathfind"
	"github.com/hargabyte/lx/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server with lx-specific functionality.
type Server struct {
	mcpServer    *server.MCPServer
	store        *store.Store
	graph        *concept.Graph
	finder       *pathfind.Finder
	analyzer     *gaps.Analyzer
	tools        map[string]bool
	lastActivity time.Time
	timeout      time.Duration
	mu           sync.RWMutex
}

// Config holds server configuration.
type Config struct {
	Tools   []string      // Which tools to expose (empty = all)
	Timeout time.Duration // Inactivity timeout (0 = no timeout)
}

// AllTools lists all available tools.
var AllTools = []string{"lx_path", "lx_gaps", "lx_find", "lx_show"}

// New creates a new MCP server for lx.
func New(cfg Config) (*Server, error) {
	// Find .lx directory
	lxDir, err := config.FindConfigDir(".")
	if err != nil {
		return nil, fmt.Errorf("lx not initialized: run 'lx init && lx import' first")
	}

	appCfg, err := config.Load(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	storeDB, err := store.Open(lxDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	g, err := storeDB.LoadGraph()
	if err != nil {
		storeDB.Close()
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}

	engine := cluster.NewEngine(appCfg.Clustering.ClusterConfig())
	partition := engine.Partition(g)
	finder := pathfind.NewFinder(g, appCfg.Weights.Policy(), partition,
		pathfind.WithClusterSuggestionLimit(appCfg.Path.ClusterSuggestions))

	mcpServer := server.NewMCPServer(
		"lx",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s := &Server{
		mcpServer:    mcpServer,
		store:        storeDB,
		graph:        g,
		finder:       finder,
		analyzer:     gaps.NewAnalyzer(g),
		tools:        make(map[string]bool),
		lastActivity: time.Now(),
		timeout:      cfg.Timeout,
	}

	toolsToRegister := cfg.Tools
	if len(toolsToRegister) == 0 {
		toolsToRegister = AllTools
	}

	for _, toolName := range toolsToRegister {
		if err := s.registerTool(toolName); err != nil {
			storeDB.Close()
			return nil, fmt.Errorf("failed to register tool %s: %w", toolName, err)
		}
		s.tools[toolName] = true
	}

	return s, nil
}

// registerTool registers a single tool with the MCP server.
func (s *Server) registerTool(name string) error {
	switch name {
	case "lx_path":
		return s.registerPathTool()
	case "lx_gaps":
		return s.registerGapsTool()
	case "lx_find":
		return s.registerFindTool()
	case "lx_show":
		return s.registerShowTool()
	default:
		return fmt.Errorf("unknown tool: %s", name)
	}
}

// ServeStdio starts the server using stdio transport.
func (s *Server) ServeStdio() error {
	if s.timeout > 0 {
		go s.timeoutChecker()
	}

	return server.ServeStdio(s.mcpServer)
}

// timeoutChecker monitors for inactivity and exits if timeout exceeded.
func (s *Server) timeoutChecker() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.RLock()
		elapsed := time.Since(s.lastActivity)
		s.mu.RUnlock()

		if elapsed > s.timeout {
			fmt.Fprintf(os.Stderr, "lx serve: timeout after %v of inactivity\n", s.timeout)
			os.Exit(0)
		}
	}
}

// updateActivity updates the last activity timestamp.
func (s *Server) updateActivity() {
	s.mu.Lock()
	s.lastActivity = time.Now()
	s.mu.Unlock()
}

// Close closes the server and its resources.
func (s *Server) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

// ListTools returns the list of registered tools.
func (s *Server) ListTools() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := make([]string, 0, len(s.tools))
	for t := range s.tools {
		tools = append(tools, t)
	}
	return tools
}

// CallTool dispatches a tool call by name with the given arguments.
// Returns the JSON result string or an error.
func (s *Server) CallTool(name string, args map[string]interface{}) (string, error) {
	s.mu.RLock()
	registered := s.tools[name]
	s.mu.RUnlock()

	if !registered {
		return "", fmt.Errorf("unknown tool: %s", name)
	}

	switch name {
	case "lx_path":
		target, _ := args["target"].(string)
		if target == "" {
			return "", fmt.Errorf("target parameter is required")
		}
		completed, _ := args["completed"].(string)
		return s.executePath(completed, target)

	case "lx_gaps":
		topic, _ := args["topic"].(string)
		if topic == "" {
			return "", fmt.Errorf("topic parameter is required")
		}
		completed, _ := args["completed"].(string)
		return s.executeGaps(completed, topic)

	case "lx_find":
		query, _ := args["query"].(string)
		if query == "" {
			return "", fmt.Errorf("query parameter is required")
		}
		limit := 20
		if l, ok := args["limit"].(float64); ok {
			limit = int(l)
		}
		return s.executeFind(query, limit)

	case "lx_show":
		name, _ := args["name"].(string)
		if name == "" {
			return "", fmt.Errorf("name parameter is required")
		}
		return s.executeShow(name)

	default:
		return "", fmt.Errorf("unknown tool: %s", name)
	}
}

// registerPathTool registers the lx_path tool.
func (s *Server) registerPathTool() error {
	tool := mcp.NewTool("lx_path",
		mcp.WithDescription("Find a learning path to a target concept given what the learner already knows."),
		mcp.WithString("target",
			mcp.Required(),
			mcp.Description("Target concept name or ID"),
		),
		mcp.WithString("completed",
			mcp.Description("Comma-separated names or IDs of concepts already completed"),
		),
	)

	s.mcpServer.AddTool(tool, s.handlePath)
	return nil
}

// registerGapsTool registers the lx_gaps tool.
func (s *Server) registerGapsTool() error {
	tool := mcp.NewTool("lx_gaps",
		mcp.WithDescription("Analyze which subtopics of a topic the learner is missing, ordered by priority."),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("Target topic name or ID"),
		),
		mcp.WithString("completed",
			mcp.Description("Comma-separated names or IDs of concepts already completed"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleGaps)
	return nil
}

// registerFindTool registers the lx_find tool.
func (s *Server) registerFindTool() error {
	tool := mcp.NewTool("lx_find",
		mcp.WithDescription("Search for concepts by name."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Name or fragment to search for"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results (default: 20)"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleFind)
	return nil
}

// registerShowTool registers the lx_show tool.
func (s *Server) registerShowTool() error {
	tool := mcp.NewTool("lx_show",
		mcp.WithDescription("Show a concept with its subtopics and typed relations."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Concept name or ID to look up"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleShow)
	return nil
}

// Tool handlers

func (s *Server) handlePath(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	target, ok := args["target"].(string)
	if !ok || target == "" {
		return mcp.NewToolResultError("target parameter is required"), nil
	}
	completed, _ := args["completed"].(string)

	result, err := s.executePath(completed, target)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleGaps(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	topic, ok := args["topic"].(string)
	if !ok || topic == "" {
		return mcp.NewToolResultError("topic parameter is required"), nil
	}
	completed, _ := args["completed"].(string)

	result, err := s.executeGaps(completed, topic)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleFind(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}

	limit := 20
	if l, ok := args["limit"].(float64); ok {
		limit = int(l)
	}

	result, err := s.executeFind(query, limit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleShow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	name, ok := args["name"].(string)
	if !ok || name == "" {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	result, err := s.executeShow(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(result), nil
}

// Execution functions (implementations)

func (s *Server) executePath(completed, target string) (string, error) {
	completedSet, err := s.resolveCompleted(completed)
	if err != nil {
		return "", err
	}

	targetID, err := s.graph.Resolve(target)
	if err != nil {
		return "", err
	}

	res, err := s.finder.Find(completedSet, targetID)
	if err != nil {
		return "", err
	}

	out := output.PathOutput{
		Target:   output.Ref(s.graph.Node(targetID), output.DensityMedium),
		Reason:   string(res.Reason),
		Distance: res.Distance,
		Steps:    output.Refs(s.graph, res.Path, output.DensityMedium),
		Note:     pathfind.ReasonNote(res.Reason),
	}
	for id := range completedSet {
		out.Completed = append(out.Completed, id)
	}
	sort.Strings(out.Completed)

	return toJSON(out)
}

func (s *Server) executeGaps(completed, topic string) (string, error) {
	completedSet, err := s.resolveCompleted(completed)
	if err != nil {
		return "", err
	}

	topicID, err := s.graph.Resolve(topic)
	if err != nil {
		return "", err
	}

	report, err := s.analyzer.Analyze(completedSet, topicID)
	if err != nil {
		return "", err
	}

	out := output.GapOutput{
		Target:               output.Ref(s.graph.Node(report.TargetTopic), output.DensityMedium),
		CompletionPercentage: report.CompletionPercentage,
		Completed:            output.Refs(s.graph, report.Completed, output.DensityMedium),
		Missing:              output.Refs(s.graph, report.Missing, output.DensityMedium),
		Prerequisites:        output.Refs(s.graph, report.Prerequisites, output.DensityMedium),
	}

	return toJSON(out)
}

func (s *Server) executeFind(query string, limit int) (string, error) {
	matches := s.graph.Search(query)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := output.FindOutput{
		Query: query,
		Count: len(matches),
	}
	for _, n := range matches {
		out.Results = append(out.Results, output.Ref(n, output.DensityMedium))
	}

	return toJSON(out)
}

func (s *Server) executeShow(name string) (string, error) {
	id, err := s.graph.Resolve(name)
	if err != nil {
		return "", err
	}

	n := s.graph.Node(id)
	out := output.NodeOutput{
		Concept:  output.Ref(n, output.DensityDense),
		Outgoing: make(map[string][]string),
		Incoming: make(map[string][]string),
	}
	for _, sub := range s.graph.SubtopicsOf(id) {
		out.Subtopics = append(out.Subtopics, output.Ref(s.graph.Node(sub), output.DensityMedium))
	}
	for _, e := range s.graph.EdgesOut(id) {
		out.Outgoing[string(e.Type)] = append(out.Outgoing[string(e.Type)], e.Target)
	}
	for _, e := range s.graph.EdgesIn(id) {
		out.Incoming[string(e.Type)] = append(out.Incoming[string(e.Type)], e.Source)
	}

	return toJSON(out)
}

// resolveCompleted parses a comma-separated list of names or IDs into a
// set of node IDs. Entries that resolve to nothing are reported back.
func (s *Server) resolveCompleted(completed string) (map[string]bool, error) {
	set := make(map[string]bool)
	for _, part := range strings.Split(completed, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := s.graph.Resolve(part)
		if err != nil {
			return nil, err
		}
		set[id] = true
	}
	return set, nil
}

func toJSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
