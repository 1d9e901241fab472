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

// Package workqueue is the bounded queue that carries work from the emulator
// goroutine to the rasterizer goroutine. Items are executed by the consumer in
// the order they were added.
//
// The producer can ask to wait until an item has been executed. Each slot in
// the ring has its own condition variable for this purpose so that the
// producer sleeps until the consumer signals completion of that specific item.
//
// The queue has one producer and one consumer. The consumer is started with
// Run() and stops when Shutdown() is called.
package workqueue
