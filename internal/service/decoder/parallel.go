package decoder

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/pkg/workerpool"
)

// fileBacklog caps the decoded blocks a worker may hold ahead of the writer.
const fileBacklog = 16

type fileItem struct {
	block *blkfile.Block
	err   error
}

type parallelItem struct {
	src   blkfile.Source
	block *blkfile.Block
	err   error
}

// ParallelSource decodes several files at once and yields their blocks in file
// order, numbered as a sequential pass would number them. Each worker streams
// its file through a short backlog, so memory stays bounded by workers times
// fileBacklog blocks. A decoding error ends its file; the blocks decoded before
// it are still yielded.
type ParallelSource struct {
	sources []blkfile.Source
	workers int
	opts    []blkfile.Option

	once    sync.Once
	cancel  context.CancelFunc
	items   chan parallelItem
	done    chan struct{}
	files   sync.WaitGroup
	runErr  error
	counter uint64
	current *blkfile.Source
}

func NewParallelSource(sources []blkfile.Source, workers int, firstIndex uint64, opts ...blkfile.Option) *ParallelSource {
	return &ParallelSource{
		sources: sources,
		workers: workers,
		opts:    opts,
		counter: firstIndex,
		items:   make(chan parallelItem),
		done:    make(chan struct{}),
	}
}

func (p *ParallelSource) start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	go func() {
		defer close(p.done)
		defer close(p.items)
		p.runErr = workerpool.Ordered(ctx, p.workers, p.sources, p.decodeFile, func(src blkfile.Source, file <-chan fileItem) error {
			for item := range file {
				if err := p.push(ctx, parallelItem{src: src, block: item.block, err: item.err}); err != nil {
					return err
				}
			}
			return ctx.Err()
		})
		p.files.Wait()
	}()
}

// decodeFile starts decoding src in the background. The returned channel is
// closed after the file's last block, after its error, or when ctx ends.
func (p *ParallelSource) decodeFile(ctx context.Context, src blkfile.Source) (<-chan fileItem, error) {
	out := make(chan fileItem, fileBacklog)
	p.files.Add(1)
	go func() {
		defer p.files.Done()
		defer close(out)

		session := blkfile.NewSession([]blkfile.Source{src}, p.opts...)
		defer session.Close()

		send := func(item fileItem) bool {
			select {
			case <-ctx.Done():
				return false
			case out <- item:
				return true
			}
		}
		for {
			b, err := session.Next(ctx)
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return
			}
			if err != nil {
				send(fileItem{err: err})
				return
			}
			if !send(fileItem{block: b}) {
				return
			}
		}
	}()
	return out, nil
}

func (p *ParallelSource) push(ctx context.Context, item parallelItem) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.items <- item:
		return nil
	}
}

// Next returns the next block in file order, or io.EOF after the last file.
func (p *ParallelSource) Next(ctx context.Context) (*blkfile.Block, error) {
	p.once.Do(func() { p.start(ctx) })

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case item, ok := <-p.items:
		if !ok {
			<-p.done
			if p.runErr != nil {
				return nil, p.runErr
			}
			return nil, io.EOF
		}
		src := item.src
		p.current = &src
		if item.err != nil {
			return nil, item.err
		}
		item.block.Index = p.counter
		p.counter++
		return item.block, nil
	}
}

// SkipSource is a no-op: a file's error is always its last item.
func (p *ParallelSource) SkipSource() error {
	return nil
}

func (p *ParallelSource) CurrentSource() (blkfile.Source, bool) {
	if p.current == nil {
		return blkfile.Source{}, false
	}
	return *p.current, true
}

// Close stops the workers and waits for them to exit.
func (p *ParallelSource) Close() error {
	p.once.Do(func() {
		close(p.items)
		close(p.done)
	})
	if p.cancel != nil {
		p.cancel()
	}
	for range p.items {
	}
	<-p.done
	return nil
}
