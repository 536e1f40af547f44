// Package toast implements transient, self-dismissing notifications.
//
// Manager.Show adds a toast to the visible set of a session and publishes a
// "shown" event. After the display time (3s by default) the toast is marked as
// fading, and after the fade time (300ms) it is removed. Each phase is published
// through a Deliverer; BroadcastDeliverer lets an SSE handler stream them:
//
//	d := toast.NewBroadcastDeliverer(16)
//	m := toast.NewManager(toast.NewMemoryStorage(), d)
//	sub := d.Subscribe(ctx, session)
//	_ = m.Notify(ctx, session, "Opening your email client...", toast.LevelInfo)
//
// Toasts cannot be dismissed early and calls never coalesce.
package toast
