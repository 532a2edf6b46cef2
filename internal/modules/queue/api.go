package queue

import (
	"context"
	"sync"

	"github.com/reusedev/mockup-hub/internal/modules/logs"
)

var BatchTaskQueue = NewTaskQueue(100)
var closeOnce sync.Once

func exeBatchTask(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	for {
		select {
		case task, ok := <-BatchTaskQueue:
			if ok {
				wg.Add(1)
				go func() {
					task.Execute(ctx)
					wg.Done()
				}()
			} else {
				// channel close
				wg.Done()
				return
			}
		case <-ctx.Done():
			closeOnce.Do(func() {
				close(BatchTaskQueue)
				logs.Logger.Info().Msg("Batch task queue closed")
			})
		}
	}
}

func InitBatchTaskQueue(ctx context.Context, wg *sync.WaitGroup) {
	go exeBatchTask(ctx, wg)
}
