// Package textframes exports the text of a design document, one list of
// strings per region (artboard or top-level frame), to a file.
//
// The CLI lives in cmd/textframes; this root package exposes the same
// pipeline as a Go API so that callers can embed extraction in their own
// tools without shelling out.
//
// # Quick start
//
//	result, err := textframes.Run(textframes.Options{
//	    FigmaURL:    "https://www.figma.com/design/ABC123/My-Design",
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    Policy: extract.Policy{
//	        Target: target.AllItems,
//	        Order:  order.PositionY,
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("text-contents.json", []byte(result.Output), 0644)
//
// # Documents
//
// A document is any [extract.Document]. Set [Options.Document] to plug in
// your own host, or let Run open a YAML/JSON snapshot, a saved Figma file
// or a live Figma file. Figma URLs that carry node IDs restrict the
// regions to those nodes.
//
// # Policies
//
// The target policy reduces the ordered items of a region to strings:
// every label, or a single label preferring text over symbols. The order
// policy sorts by stacking order or by position, ascending unless
// [extract.Policy.Direction] says otherwise.
//
// # Interaction
//
// [Options.Dialog], [Options.Progress] and [Options.Files] are optional
// hosts for the option dialog, the progress indicator and the save
// dialog. The pkg/prompt package implements all three on the terminal.
// Canceling either dialog is reported in [Result], not as an error.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output. A *log.Logger from
// github.com/charmbracelet/log satisfies the interface as is.
package textframes
