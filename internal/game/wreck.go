package game

// Room is one salvageable compartment of a wreck.
type Room struct {
	ID          string
	Name        string
	HazardType  HazardType
	HazardLevel int
	Loot        []Item
	Looted      bool
	Sealed      bool
}

// removeItem takes an item out of the room, marking the room looted when the
// last item leaves. Reports whether the item was present.
func (r *Room) removeItem(itemID string) bool {
	for i, item := range r.Loot {
		if item.ID != itemID {
			continue
		}
		r.Loot = append(r.Loot[:i:i], r.Loot[i+1:]...)
		r.Looted = len(r.Loot) == 0
		return true
	}
	return false
}

// Wreck is a derelict structure containing rooms with hazards and loot.
type Wreck struct {
	ID       string
	Name     string
	Tier     int
	Distance int
	Rooms    []Room
}

// Room returns a pointer to the room with the given id.
func (w *Wreck) Room(roomID string) *Room {
	for i := range w.Rooms {
		if w.Rooms[i].ID == roomID {
			return &w.Rooms[i]
		}
	}
	return nil
}

// WreckStats summarizes a wreck's remaining salvage.
type WreckStats struct {
	TotalRooms     int
	LootedRooms    int
	TotalLoot      int
	EstimatedValue int
}

// Stats computes summary statistics over the wreck's current contents.
func (w Wreck) Stats() WreckStats {
	stats := WreckStats{TotalRooms: len(w.Rooms)}
	for _, room := range w.Rooms {
		if room.Looted {
			stats.LootedRooms++
		}
		for _, item := range room.Loot {
			stats.TotalLoot++
			stats.EstimatedValue += item.Value
		}
	}
	return stats
}

// Stripped reports whether nothing salvageable remains.
func (w Wreck) Stripped() bool {
	for _, room := range w.Rooms {
		if !room.Looted && len(room.Loot) > 0 {
			return false
		}
	}
	return true
}
