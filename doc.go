// Package infinitescroll augments scrollable containers with infinite
// scrolling: a Controller watches a container's scroll position, and when the
// user drags near the trailing edge of content it reserves room for a loading
// indicator, asks the host for more content, and smoothly reconciles insets
// and scroll position once the content has arrived.
//
// The Controller works against the small ScrollableContainer and
// LoadingIndicator interfaces, so it can be adapted to any widget toolkit.
// ScrollView and ListView are tcell-backed containers shipped with the
// package, and App is a minimal event loop for running them standalone:
//
//	list := infinitescroll.NewListView()
//	list.SetBuilder(buildRow)
//
//	app := infinitescroll.NewApp()
//	controller := infinitescroll.NewController(list, infinitescroll.Vertical).
//		SetScheduleFunc(app.After).
//		SetBeginFunc(func(_ infinitescroll.ScrollableContainer, done func()) {
//			go func() {
//				loadMoreRows()
//				app.QueueUpdate(done)
//			}()
//		})
//	defer controller.Detach()
//
//	list.SetAnimator(infinitescroll.NewAnimator(app.Post))
//	if err := app.SetRoot(list).Run(); err != nil {
//		panic(err)
//	}
//
// Loading content is entirely the host's responsibility: the controller has
// no timeout, so a begin handler that never invokes its completion token
// leaves the controller loading indefinitely.
package infinitescroll
