// Package movieclip is a timeline playhead engine for retained-mode 2D scene
// graphs built on [Ebitengine].
//
// A [MovieClip] owns a [Node] and a [Timeline]. Each tick it resolves which
// frame it is on, pushes that frame into the timeline and reconciles its
// children so exactly the display objects the timeline prescribes for the
// frame are attached, in order, with the right properties. A [BitmapClip]
// does the same against a flat list of atlas frames.
//
// # Quick start
//
//	tl := movieclip.NewTimeline(map[string]int{"idle": 0, "walk": 12})
//	arm := movieclip.NewSprite("arm", atlas.Region("arm"))
//	tl.AddTween(movieclip.NewTween(arm).
//		To(12, ease.Linear, movieclip.P("rotation", 0.0)).
//		To(12, ease.InOutQuad, movieclip.P("rotation", 1.2)))
//
//	hero := movieclip.NewMovieClip("hero", movieclip.ClipConfig{
//		Timeline:  tl,
//		Framerate: 24,
//	})
//	scene.Root().AddChild(hero)
//	hero.Clip.GotoAndPlay(movieclip.AtLabel("walk"))
//
// Call [Scene.Update] once per Ebitengine tick, or [Scene.Advance] with an
// explicit delta in milliseconds. The scene walks the tree top-down so a
// parent clip always reconciles before its synchronized children read the
// offsets it assigned.
//
// # Modes
//
// Independent clips advance from their own playhead. SingleFrame clips stay
// on their start position. Synchronized clips follow the position their
// parent assigned while placing them.
//
// # Managed children
//
// Children placed by the timeline are tracked by [Node.ID]. Children added by
// hand are never touched by reconciliation. Detached children are not
// disposed.
//
// [Ebitengine]: https://ebitengine.org
package movieclip
