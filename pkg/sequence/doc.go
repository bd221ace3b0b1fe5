// Package sequence records sequence diagrams through a small scoped DSL
// and lays them out for animation.
//
// Actors are registered with [Diagram.AddObjects]. Entering an actor's
// scope makes it the source of the next interaction; entering another
// actor's scope while that interaction is open finishes it as a message to
// the new actor. Ending a scope hands control back to the enclosing actor,
// which finishes the reply:
//
//	d := sequence.New(lib)
//	actors, _ := d.AddObjects("Browser", "Web", "App")
//	browser, web, app := actors[0], actors[1], actors[2]
//	browser.Within(func() {
//	    web.Text("Make a request").Within(func() {
//	        web.To(app, "Request with no response")
//	        app.Text("Retrieve a json object").Within(func() {
//	            app.ToSelf("Calls itself")
//	            app.Note("Do lots of thinking")
//	            app.Ret("Value from db")
//	        })
//	        web.Ret("HTML response")
//	    })
//	})
//	err := d.Animate(ctx, renderer)
//
// [Actor.Begin] returns the scope handle directly for callers that prefer
// an explicit defer. Self calls and notes recorded while an interaction is
// open are placed just before it, so they appear under the actor that was
// just activated.
//
// # Layout
//
// [Diagram.Fit] scales the actors into the frame and accumulates the
// factor. [Diagram.Layout] then yields each finished interaction scaled by
// that factor and stacked below the previous one. Interactions left open
// are never laid out.
package sequence
