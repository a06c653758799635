// crates/ros-z-go/examples/detections/main.go
//
// This example plays both ends of a detection topic without a transport.
// A producer encodes interfaces/msg/DetectionInfoArray frames by type name at
// 10 Hz and a Dispatcher decodes them into a RingChannel that a slow consumer
// drains, so the oldest frames are dropped when it falls behind.
//
// Run this example with:
//
//	ROSZ_LOG=DEBUG go run main.go
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ZettaScaleLabs/ros-z-typesupport/crates/ros-z-go/generated/interfaces"
	"github.com/ZettaScaleLabs/ros-z-typesupport/crates/ros-z-go/rosz"
)

var classes = []string{"car", "pedestrian", "bicycle", "dog"}

func frame(seq int) *interfaces.DetectionInfoArray {
	msg := &interfaces.DetectionInfoArray{}
	for i := 0; i < seq%4; i++ {
		msg.Detections = append(msg.Detections, interfaces.DetectionInfo{
			ClassName:  classes[(seq+i)%len(classes)],
			Confidence: 0.5 + rand.Float32()/2,
			CenterX:    int32(rand.Intn(640)),
			CenterY:    int32(rand.Intn(480)),
			X:          rand.Float64() * 10,
			Y:          rand.Float64()*4 - 2,
			Z:          rand.Float64(),
		})
	}
	return msg
}

func main() {
	log.Println("Starting ros-z Go detections example...")

	ts, err := rosz.GetMessageTypeSupport(rosz.TypesupportIdentifier, interfaces.DetectionInfoArray_Name)
	if err != nil {
		log.Fatalf("Type support not registered: %v", err)
	}
	size, bounded := ts.Callbacks.MaxSerializedSize()
	log.Printf("Type %s (%s), minimum frame %d bytes, bounded=%t", ts.Name(), ts.DDSTypeName(), size, bounded)

	ring := rosz.NewRingChannel[*interfaces.DetectionInfoArray](4)
	dispatcher, err := rosz.NewDispatcher[*interfaces.DetectionInfoArray](ring)
	if err != nil {
		log.Fatalf("Failed to create dispatcher: %v", err)
	}

	// Consumer goroutine, slower than the producer
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range dispatcher.Receiver() {
			for _, d := range msg.Detections {
				log.Printf("[RX] %-10s %.2f at (%d,%d)", d.ClassName, d.Confidence, d.CenterX, d.CenterY)
			}
			if len(msg.Detections) == 0 {
				log.Println("[RX] empty frame")
			}
			time.Sleep(250 * time.Millisecond)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	log.Println("Publishing frames... Press Ctrl+C to exit")

	for seq := 0; ; seq++ {
		select {
		case <-sigChan:
			log.Println("Shutting down...")
			dispatcher.Close()
			<-done
			fmt.Printf("frames dropped by ring: %d, malformed: %d\n", ring.Dropped(), dispatcher.Failed())
			return
		case <-ticker.C:
			data, err := rosz.SerializeMessage(interfaces.DetectionInfoArray_Name, frame(seq))
			if err != nil {
				log.Printf("Failed to serialize: %v", err)
				continue
			}
			// Corrupt every 20th frame to show the error path
			if seq%20 == 19 {
				data = data[:len(data)-1]
			}
			if err := dispatcher.Dispatch(data); err != nil {
				log.Printf("Dropped frame %d: %v", seq, err)
			}
		}
	}
}
