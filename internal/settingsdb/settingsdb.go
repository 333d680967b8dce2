package settingsdb

import (
	"errors"
	"sync"

	"github.com/boltdb/bolt"

	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/post"
)

/*
*	Структура базы данных
*
*	"settings"
*		| channel
*
 */

var ErrEmptyChannel = errors.New("channel username can't be empty")

var (
	settingsBucket = []byte("settings")
	channelKey     = []byte("channel")
)

// ChannelStore хранит канал для кнопки "Join Channel"
type ChannelStore interface {
	Channel() (string, error)
	SetChannel(handle string) error
}

// Memory хранит канал в памяти. После перезапуска значение теряется
type Memory struct {
	mu      sync.RWMutex
	channel string
}

// NewMemory возвращает хранилище с начальным значением (может быть пустым)
func NewMemory(channel string) *Memory {
	return &Memory{channel: post.NormalizeChannel(channel)}
}

// Channel возвращает текущий канал
func (m *Memory) Channel() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.channel, nil
}

// SetChannel перезаписывает канал
func (m *Memory) SetChannel(handle string) error {
	handle = post.NormalizeChannel(handle)
	if handle == "" {
		return ErrEmptyChannel
	}

	m.mu.Lock()
	m.channel = handle
	m.mu.Unlock()
	return nil
}

// Bolt хранит канал в bolt-базе
type Bolt struct {
	dbAdapter *bolt.DB
}

// Open открывает базу данных (или создаёт, если не существует).
// Если в базе канала нет, записывается initial
func Open(path string, initial string) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	initial = post.NormalizeChannel(initial)
	err = db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(settingsBucket)
		if err != nil {
			return err
		}
		if bucket.Get(channelKey) == nil && initial != "" {
			return bucket.Put(channelKey, []byte(initial))
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Bolt{dbAdapter: db}, nil
}

// Close закрывает базу данных
func (b *Bolt) Close() error {
	return b.dbAdapter.Close()
}

// Channel возвращает текущий канал
func (b *Bolt) Channel() (string, error) {
	var channel string
	err := b.dbAdapter.View(func(tx *bolt.Tx) error {
		channel = string(tx.Bucket(settingsBucket).Get(channelKey))
		return nil
	})
	return channel, err
}

// SetChannel перезаписывает канал
func (b *Bolt) SetChannel(handle string) error {
	handle = post.NormalizeChannel(handle)
	if handle == "" {
		return ErrEmptyChannel
	}

	return b.dbAdapter.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(settingsBucket).Put(channelKey, []byte(handle))
	})
}
