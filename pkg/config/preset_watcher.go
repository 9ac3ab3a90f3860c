package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// PresetWatcher 监视外部预设文件，文件变更时重新加载
//
// 监视在独立 goroutine 中进行，但从不直接修改场景：
// 重新加载成功的预设集合通过 Changes() 通道交给帧循环，
// 帧循环在 Update 中非阻塞地读取并重建场景
type PresetWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	changes chan *PresetSet
	done    chan struct{}
	once    sync.Once
}

// WatchPresetFile 开始监视指定预设文件
//
// 监视的是文件所在目录而不是文件本身：
// 很多编辑器保存时会先写临时文件再重命名，直接监视文件会丢失事件
func WatchPresetFile(path string) (*PresetWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve preset path %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	pw := &PresetWatcher{
		path:    abs,
		watcher: w,
		changes: make(chan *PresetSet, 1),
		done:    make(chan struct{}),
	}
	go pw.loop()

	log.Printf("[PresetWatcher] Watching %s", abs)
	return pw, nil
}

// Changes 返回重新加载成功的预设集合通道
// 通道容量为 1，帧循环来不及读取时只保留最新一次加载结果
func (pw *PresetWatcher) Changes() <-chan *PresetSet {
	return pw.changes
}

// Close 停止监视
func (pw *PresetWatcher) Close() error {
	var err error
	pw.once.Do(func() {
		close(pw.done)
		err = pw.watcher.Close()
	})
	return err
}

func (pw *PresetWatcher) loop() {
	for {
		select {
		case <-pw.done:
			return
		case event, ok := <-pw.watcher.Events:
			if !ok {
				return
			}
			if !pw.isRelevant(event) {
				continue
			}
			pw.reload()
		case err, ok := <-pw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[PresetWatcher] Watch error: %v", err)
		}
	}
}

// isRelevant 判断事件是否与被监视的预设文件有关
func (pw *PresetWatcher) isRelevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != pw.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (pw *PresetWatcher) reload() {
	set, err := LoadPresetFile(pw.path)
	if err != nil {
		// 加载失败时保留当前场景
		log.Printf("[PresetWatcher] Reload failed, keeping current presets: %v", err)
		return
	}

	// 丢弃尚未被读取的旧结果
	select {
	case <-pw.changes:
	default:
	}

	select {
	case pw.changes <- set:
		log.Printf("[PresetWatcher] Reloaded %d presets from %s", len(set.Presets), pw.path)
	case <-pw.done:
	}
}
