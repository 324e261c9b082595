package watcher

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sjzsdu/codepack/project"
)

// DefaultDebounce 合并连续事件的默认时间窗口
const DefaultDebounce = 300 * time.Millisecond

// Event 一次目录结构变更，Paths 为去重后的受影响绝对路径
type Event struct {
	Paths     []string
	Timestamp time.Time
}

// Watcher 递归监视项目目录，结构变更时提示调用方重新扫描。
// 文件内容写入不触发事件，只关心新增、删除和重命名。
type Watcher struct {
	fsw      *fsnotify.Watcher
	events   chan Event
	errors   chan error
	done     chan struct{}
	root     string
	excluder *project.ExclusionMatcher

	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer
	closed  bool
}

// New 创建监视器并递归注册 root 下所有未被排除的目录
func New(root string, userExcludes ...string) (*Watcher, error) {
	root = filepath.Clean(root)
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:      fsw,
		events:   make(chan Event, 16),
		errors:   make(chan error, 4),
		done:     make(chan struct{}),
		root:     root,
		excluder: project.NewExclusionMatcher(userExcludes...),
		pending:  make(map[string]struct{}),
	}
	if err := w.addRecursive(root); err != nil {
		fsw.Close()
		return nil, err
	}
	go w.loop()
	return w, nil
}

// Events 结构变更通知通道
func (w *Watcher) Events() <-chan Event { return w.events }

// Errors 监视过程中的底层错误
func (w *Watcher) Errors() <-chan error { return w.errors }

// Close 停止监视并关闭通道，可重复调用
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.done)
	return w.fsw.Close()
}

// addRecursive 注册目录及其子目录，跳过隐藏目录和排除目录
func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) || os.IsPermission(err) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != dir && (strings.HasPrefix(name, ".") || w.excluder.Excluded(name)) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			if os.IsPermission(err) {
				return nil
			}
			return err
		}
		return nil
	})
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	path := event.Name
	if w.excludedPath(path) {
		return
	}

	// 新建目录要补注册，否则其内部的后续变更丢失
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if err := w.addRecursive(path); err != nil {
				select {
				case w.errors <- err:
				default:
				}
			}
		}
	}

	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		w.schedule(path)
	default:
		// 写入和权限变更不影响目录结构
	}
}

// excludedPath 相对路径上任一段命中排除规则即忽略
func (w *Watcher) excludedPath(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return true
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if part == "." || part == "" {
			continue
		}
		if strings.HasPrefix(part, ".") || w.excluder.Excluded(part) {
			return true
		}
	}
	return false
}

// schedule 将路径计入待通知集合，时间窗内的变更合并为一次事件
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.pending[path] = struct{}{}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(DefaultDebounce, w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if w.closed || len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	sort.Strings(paths)
	select {
	case w.events <- Event{Paths: paths, Timestamp: time.Now()}:
	case <-w.done:
	}
}
