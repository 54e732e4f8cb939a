package textframes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kataras/textframes/pkg/document"
	"github.com/kataras/textframes/pkg/export"
	"github.com/kataras/textframes/pkg/extract"
	"github.com/kataras/textframes/pkg/figma"
	"github.com/kataras/textframes/pkg/formatter"
)

// Version of the module, reported by the CLI.
const Version = "0.3.0"

// Options configures a run.
type Options struct {
	// Document, when set, is extracted as is. Otherwise a document is opened
	// from SnapshotPath, FigmaFile or FigmaURL, the first one set.
	Document     extract.Document
	SnapshotPath string // YAML or JSON snapshot
	FigmaFile    string // Figma file JSON saved from the API
	FigmaURL     string
	AccessToken  string
	NodeIDs      []string // empty = node IDs from FigmaURL, or the entire file
	Deep         bool     // select all descendants of a Figma frame
	FigmaClient  []figma.ClientOption

	Policy       extract.Policy
	Mode         formatter.Mode
	Indent       int  // structured indent, 0 = 2
	Compact      bool // structured output on one line
	EscapeQuotes bool

	DefaultFileName string // save dialog suggestion, "" = export.DefaultFileName
	Prompt          string // save dialog prompt, "" = export.DefaultPrompt

	Dialog   Dialog          // nil = use Policy without asking
	Progress Progress        // nil = no progress indicator
	Files    export.FileHost // nil = do not write, see Result.Output
	Logger   Logger          // nil = no logging
}

// Dialog lets the user adjust the policy before extraction. The boolean
// is false when the user cancels.
type Dialog interface {
	Choose(p extract.Policy) (extract.Policy, bool, error)
}

// Progress is a closable progress indicator.
type Progress interface {
	extract.Progress
	Close() error
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the extraction output.
type Result struct {
	DocumentName string
	Policy       extract.Policy
	Contents     *extract.Result
	Output       string // rendered contents
	Path         string // written file, empty when nothing was written

	// Canceled is set when the option dialog was dismissed; nothing was
	// extracted.
	Canceled bool
	// SaveCanceled is set when the save dialog was dismissed after extraction.
	SaveCanceled bool
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Run executes the pipeline: choose options, extract every region, render
// and write the output.
func Run(opts Options) (*Result, error) {
	opts.logInfo("Extracting TextFrame contents...")

	doc, name, err := Open(&opts)
	if err != nil {
		return nil, err
	}
	if name != "" {
		opts.logInfo("Document: %s", name)
	}

	policy := opts.Policy
	if opts.Dialog != nil {
		chosen, ok, err := opts.Dialog.Choose(policy)
		if err != nil {
			return nil, fmt.Errorf("option dialog: %w", err)
		}
		if !ok {
			opts.logInfo("Extraction canceled")
			return &Result{DocumentName: name, Policy: policy, Canceled: true}, nil
		}
		policy = chosen
	}
	opts.logInfo("Target: %s, order: %s (%s)", policy.Target, policy.Order, policy.Direction)

	contents, err := extractContents(&opts, doc, policy)
	if err != nil {
		opts.logError("Extraction failed: %v", err)
		return nil, err
	}
	opts.logInfo("Extracted %d text item(s) from %d region(s)", contents.Count(), contents.Len())

	output := formatter.Render(contents, opts.Mode, formatter.Options{
		Indent:       opts.Indent,
		Compact:      opts.Compact,
		EscapeQuotes: opts.EscapeQuotes,
		DocName:      name,
	})

	res := &Result{
		DocumentName: name,
		Policy:       policy,
		Contents:     contents,
		Output:       output,
	}
	if opts.Files == nil {
		return res, nil
	}

	defaultName := opts.DefaultFileName
	if defaultName == "" {
		defaultName = strings.TrimSuffix(export.DefaultFileName, ".json") + opts.Mode.Ext()
	}

	out, err := export.Write(opts.Files, output, export.Options{
		DefaultFileName: defaultName,
		Prompt:          opts.Prompt,
		Logger:          opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	res.Path, res.SaveCanceled = out.Path, out.Canceled

	return res, nil
}

// extractContents runs the extraction loop. The progress indicator is closed
// on every path, before the save dialog opens.
func extractContents(opts *Options, doc extract.Document, policy extract.Policy) (*extract.Result, error) {
	var runOpts []extract.Option
	if opts.Progress != nil {
		defer opts.Progress.Close()
		runOpts = append(runOpts, extract.WithProgress(opts.Progress))
	}
	if opts.Logger != nil {
		runOpts = append(runOpts, extract.WithLogger(opts.Logger))
	}

	return extract.Run(doc, policy, runOpts...)
}

// Open returns the document described by opts and its name.
func Open(opts *Options) (extract.Document, string, error) {
	switch {
	case opts.Document != nil:
		return opts.Document, documentName(opts.Document), nil

	case opts.SnapshotPath != "":
		opts.logInfo("Loading snapshot %s...", opts.SnapshotPath)
		snap, err := document.Load(opts.SnapshotPath)
		if err != nil {
			return nil, "", fmt.Errorf("load snapshot: %w", err)
		}
		return document.NewHost(snap), snap.Name, nil

	case opts.FigmaFile != "":
		opts.logInfo("Loading Figma file %s...", opts.FigmaFile)
		file, err := figma.LoadFile(opts.FigmaFile)
		if err != nil {
			return nil, "", fmt.Errorf("load figma file: %w", err)
		}
		return figma.NewDocument(file, figma.HostOptions{Deep: opts.Deep}), file.Name, nil

	case opts.FigmaURL != "":
		return openFigmaURL(opts)
	}

	return nil, "", errors.New("no document: set a snapshot, a Figma file or a Figma URL")
}

func openFigmaURL(opts *Options) (extract.Document, string, error) {
	if opts.AccessToken == "" {
		return nil, "", errors.New("missing Figma access token")
	}

	fileKey, err := figma.ExtractFileKey(opts.FigmaURL)
	if err != nil {
		return nil, "", fmt.Errorf("extract file key: %w", err)
	}
	opts.logInfo("File key: %s", fileKey)

	nodeIDs := opts.NodeIDs
	if len(nodeIDs) == 0 {
		if nodeIDs, err = figma.ExtractNodeIDs(opts.FigmaURL); err != nil {
			return nil, "", fmt.Errorf("extract node IDs from URL: %w", err)
		}
	}

	client := figma.NewClient(opts.AccessToken, opts.FigmaClient...)
	hostOpts := figma.HostOptions{Deep: opts.Deep}

	if len(nodeIDs) > 0 {
		opts.logInfo("Fetching %d node(s) from Figma...", len(nodeIDs))
		nodes, err := client.GetFileNodes(fileKey, nodeIDs)
		if err != nil {
			return nil, "", fmt.Errorf("fetch nodes: %w", err)
		}
		return figma.NewNodesDocument(nodes, nodeIDs, hostOpts), nodes.Name, nil
	}

	opts.logInfo("Fetching file data from Figma...")
	file, err := client.GetFile(fileKey)
	if err != nil {
		return nil, "", fmt.Errorf("fetch file: %w", err)
	}
	return figma.NewDocument(file, hostOpts), file.Name, nil
}

func documentName(doc extract.Document) string {
	if n, ok := doc.(interface{ Name() string }); ok {
		return n.Name()
	}
	return ""
}

// ParseNodeIDs parses a comma-separated string of node IDs and returns a slice.
// URL-style IDs ("1-2") are converted to the API form ("1:2").
func ParseNodeIDs(nodeIDsStr string) []string {
	parts := strings.Split(nodeIDsStr, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, strings.ReplaceAll(trimmed, "-", ":"))
		}
	}

	return result
}
