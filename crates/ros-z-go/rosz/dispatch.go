package rosz

import (
	"sync/atomic"
)

// Dispatcher decodes encapsulated CDR frames into T and delivers them to a
// Handler.
type Dispatcher[T CDRMessage] struct {
	callback func(T)
	drop     func()
	receiver <-chan T
	newMsg   func() T
	closed   atomic.Bool
	failed   atomic.Uint64
}

// NewDispatcher creates a dispatcher for the Go type T, which must be a
// registered generated message pointer type.
//
// Example:
//
//	d, err := rosz.NewDispatcher[*interfaces.DetectionInfoArray](rosz.NewFifoChannel[*interfaces.DetectionInfoArray](16))
//	go func() {
//	    for _, frame := range frames {
//	        _ = d.Dispatch(frame)
//	    }
//	    d.Close()
//	}()
//	for msg := range d.Receiver() {
//	    log.Printf("%d detections", len(msg.Detections))
//	}
func NewDispatcher[T CDRMessage](handler Handler[T]) (*Dispatcher[T], error) {
	ts, err := GetMessageTypeSupportHandle[T]()
	if err != nil {
		return nil, err
	}
	callback, drop, ch := handler.ToCbDropHandler()
	return &Dispatcher[T]{
		callback: callback,
		drop:     drop,
		receiver: ch,
		newMsg:   func() T { return ts.Callbacks.New().(T) },
	}, nil
}

// Dispatch decodes one frame and delivers it. Malformed frames are counted,
// logged at debug and returned as errors without reaching the handler.
func (d *Dispatcher[T]) Dispatch(frame []byte) error {
	if d.closed.Load() {
		return nil
	}
	msg := d.newMsg()
	if err := msg.DeserializeCDR(frame); err != nil {
		d.failed.Add(1)
		logger.Debug("dropping malformed frame", "type", msg.TypeName(), "error", err)
		return WrapRoszError(ErrorCodeDeserializationFailed, err, "dispatch "+msg.TypeName())
	}
	d.callback(msg)
	return nil
}

// Receiver returns the handler's channel, nil for callback handlers.
func (d *Dispatcher[T]) Receiver() <-chan T {
	return d.receiver
}

// Failed returns the number of frames that could not be decoded.
func (d *Dispatcher[T]) Failed() uint64 {
	return d.failed.Load()
}

// Close stops delivery and runs the handler's drop function. It is
// idempotent and must not race with Dispatch.
func (d *Dispatcher[T]) Close() {
	if d.closed.Swap(true) {
		return
	}
	if d.drop != nil {
		d.drop()
	}
}
