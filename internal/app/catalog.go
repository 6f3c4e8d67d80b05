package app

import "terminal-quiz/internal/domain"

// Catalog holds the loaded topics in file order.
type Catalog struct {
	topics []domain.Topic
	byName map[string]int
	byID   map[uint64]int
}

// NewCatalog indexes topics. When names or ids repeat, the first one wins lookups.
func NewCatalog(topics []domain.Topic) *Catalog {
	c := &Catalog{
		topics: append([]domain.Topic(nil), topics...),
		byName: make(map[string]int, len(topics)),
		byID:   make(map[uint64]int, len(topics)),
	}
	for i, t := range c.topics {
		if _, ok := c.byName[t.Name]; !ok {
			c.byName[t.Name] = i
		}
		if _, ok := c.byID[t.ID]; !ok {
			c.byID[t.ID] = i
		}
	}
	return c
}

func (c *Catalog) List() []domain.Topic {
	return append([]domain.Topic(nil), c.topics...)
}

func (c *Catalog) Len() int {
	return len(c.topics)
}

// Get returns the topic whose name matches exactly.
func (c *Catalog) Get(name string) (domain.Topic, error) {
	i, ok := c.byName[name]
	if !ok {
		return domain.Topic{}, domain.ErrTopicNotFound
	}
	return c.topics[i], nil
}

func (c *Catalog) GetByID(id uint64) (domain.Topic, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Topic{}, false
	}
	return c.topics[i], true
}

// Pick resolves name, or draws a topic uniformly at random when name is empty.
func (c *Catalog) Pick(name string, rnd RandomSource) (domain.Topic, error) {
	if name != "" {
		return c.Get(name)
	}
	if len(c.topics) == 0 {
		return domain.Topic{}, domain.ErrNoTopics
	}
	return c.topics[rnd.Intn(len(c.topics))], nil
}
