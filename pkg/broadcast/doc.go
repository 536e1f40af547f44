// Package broadcast provides typed in-process publish/subscribe.
//
//	b := broadcast.NewMemoryBroadcaster[Event](16)
//	sub := b.Subscribe(ctx)
//	go b.Broadcast(ctx, broadcast.Message[Event]{Data: ev})
//	for msg := range sub.Receive(ctx) {
//		handle(msg.Data)
//	}
package broadcast
