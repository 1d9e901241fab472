// This file is part of Gopherpsx.
//
// Gopherpsx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherpsx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherpsx.  If not, see <https://www.gnu.org/licenses/>.

package workqueue_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/gopherpsx/curated"
	"github.com/jetsetilly/gopherpsx/hardware/gpu/workqueue"
	"github.com/jetsetilly/gopherpsx/test"
)

func TestOrder(t *testing.T) {
	q := workqueue.NewQueue[int](4)

	var executed []int
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		q.Run(func(v int) {
			executed = append(executed, v)
		})
	}()

	// more items than slots so that the producer must block at least once
	for i := 0; i < 100; i++ {
		test.ExpectSuccess(t, q.Add(i, false))
	}

	// the final item waits so that everything before it has been executed
	test.ExpectSuccess(t, q.Add(100, true))

	q.Shutdown()
	wg.Wait()
	test.ExpectEquality(t, q.Len(), 0)

	test.DemandEquality(t, len(executed), 101)
	for i, v := range executed {
		test.ExpectEquality(t, v, i)
	}
}

func TestWaitForCompletion(t *testing.T) {
	q := workqueue.NewQueue[func()](0)
	test.ExpectEquality(t, q.Cap(), workqueue.DefaultLength)

	go q.Run(func(f func()) {
		f()
	})
	defer q.Shutdown()

	// the value is written by the consumer goroutine. waiting for completion
	// means it is safe to read it after Add() returns
	var v int
	test.ExpectSuccess(t, q.Add(func() { v = 10 }, true))
	test.ExpectEquality(t, v, 10)

	test.ExpectSuccess(t, q.Add(func() { v++ }, false))
	test.ExpectSuccess(t, q.Add(func() { v++ }, true))
	test.ExpectEquality(t, v, 12)
}

func TestShutdown(t *testing.T) {
	q := workqueue.NewQueue[int](2)

	done := make(chan bool)
	go func() {
		q.Run(func(int) {})
		done <- true
	}()

	q.Shutdown()
	<-done

	err := q.Add(1, false)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, workqueue.ShutdownError))
}

func TestShutdownReleasesProducer(t *testing.T) {
	q := workqueue.NewQueue[int](1)

	// no consumer is running so the second Add() blocks on a full queue
	test.ExpectSuccess(t, q.Add(1, false))

	errs := make(chan error)
	go func() {
		errs <- q.Add(2, false)
	}()

	q.Shutdown()
	test.ExpectSuccess(t, curated.Is(<-errs, workqueue.ShutdownError))
}
