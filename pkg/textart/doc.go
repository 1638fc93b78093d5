// Package textart renders a text string as ASCII art by rasterizing it with
// a real font and mapping pixel coverage to fill characters.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Plan: measure the text (or a reference glyph) to size the pixel canvas
//  2. Rasterize: draw the text onto an opacity canvas via fogleman/gg
//  3. Compose: walk the canvas inside the crop margins and emit characters
//
// Each stage can be used independently; [Render] runs the complete pipeline.
//
// # Usage
//
//	opts := textart.Options{
//	    Text:       "Hi!",
//	    FontFamily: "Go Mono",
//	    FontSize:   24,
//	    Fill:       "#",
//	}
//	art, err := textart.Render(opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(art)
//
// Rendering is stateless: every call owns its font face and canvas, so
// concurrent calls are safe.
package textart
