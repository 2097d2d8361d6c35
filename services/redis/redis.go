package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	redis_models "Gimmi/models/redis"
	redis_utils "Gimmi/services/redis/utils"

	"github.com/redis/go-redis/v9"
)

// How many chat messages the history list retains
const chatHistoryLength = 100

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(addr string, db int) *RedisClient {
	var client *redis.Client
	if addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// SavePlayerPresence stores a player's presence with a 24h TTL.
// Key format: "presence:{pseudo}"
func (rc *RedisClient) SavePlayerPresence(presence *redis_models.PlayerPresence) error {
	key := redis_utils.FormatPresenceKey(presence.Pseudo)
	data, err := json.Marshal(presence)
	if err != nil {
		return fmt.Errorf("error marshaling presence data: %v", err)
	}
	return rc.client.Set(rc.ctx, key, data, 24*time.Hour).Err()
}

// GetPlayerPresence retrieves a player's presence.
func (rc *RedisClient) GetPlayerPresence(pseudo string) (*redis_models.PlayerPresence, error) {
	key := redis_utils.FormatPresenceKey(pseudo)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err != nil {
		return nil, fmt.Errorf("error getting presence data: %v", err)
	}

	var presence redis_models.PlayerPresence
	if err := json.Unmarshal(data, &presence); err != nil {
		return nil, fmt.Errorf("error unmarshaling presence data: %v", err)
	}
	return &presence, nil
}

// DeletePlayerPresence removes a player's presence entry.
func (rc *RedisClient) DeletePlayerPresence(pseudo string) error {
	key := redis_utils.FormatPresenceKey(pseudo)
	if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
		return fmt.Errorf("error deleting presence data: %v", err)
	}
	return nil
}

// PushChatMessage appends a message to the chat history, trimming the list
// to the most recent entries.
func (rc *RedisClient) PushChatMessage(message *redis_models.ChatMessage) error {
	key := redis_utils.FormatChatHistoryKey()
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling chat message: %v", err)
	}
	if err := rc.client.RPush(rc.ctx, key, data).Err(); err != nil {
		return fmt.Errorf("error pushing chat message: %v", err)
	}
	return rc.client.LTrim(rc.ctx, key, -chatHistoryLength, -1).Err()
}

// GetRecentChatMessages returns the retained chat history, oldest first.
func (rc *RedisClient) GetRecentChatMessages() ([]redis_models.ChatMessage, error) {
	key := redis_utils.FormatChatHistoryKey()
	entries, err := rc.client.LRange(rc.ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("error reading chat history: %v", err)
	}

	messages := make([]redis_models.ChatMessage, 0, len(entries))
	for _, entry := range entries {
		var message redis_models.ChatMessage
		if err := json.Unmarshal([]byte(entry), &message); err != nil {
			return nil, fmt.Errorf("error unmarshaling chat message: %v", err)
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// CleanupKeys removes the specified keys from Redis
func (rc *RedisClient) CleanupKeys(keys []string) error {
	for _, key := range keys {
		if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to cleanup Redis key %s: %v", key, err)
		}
	}
	return nil
}
