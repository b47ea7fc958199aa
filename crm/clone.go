package crm

import "slices"

// Clone returns a copy that shares no pointers or slices with c.
func (c Customer) Clone() Customer {
	c.LastActivity = clonePtr(c.LastActivity)
	c.ChannelPreference = slices.Clone(c.ChannelPreference)
	c.SegmentIDs = slices.Clone(c.SegmentIDs)
	return c
}

func (p Product) Clone() Product { return p }

func (t Transaction) Clone() Transaction { return t }

// Clone returns a copy that shares no pointers or slices with c.
func (c Campaign) Clone() Campaign {
	c.ScheduledAt = clonePtr(c.ScheduledAt)
	c.SegmentIDs = slices.Clone(c.SegmentIDs)
	c.Trigger = clonePtr(c.Trigger)
	return c
}

// Clone returns a copy that shares no pointers or slices with s.
func (s Segment) Clone() Segment {
	if s.Filters != nil {
		filters := make([]SegmentFilter, len(s.Filters))
		for i, f := range s.Filters {
			switch v := f.Value.(type) {
			case []any:
				f.Value = slices.Clone(v)
			case []string:
				f.Value = slices.Clone(v)
			}
			filters[i] = f
		}
		s.Filters = filters
	}
	return s
}

// Clone returns a copy that shares no slices with d.
func (d DashboardStats) Clone() DashboardStats {
	d.RecentTransactions = slices.Clone(d.RecentTransactions)
	d.RevenueByPeriod = slices.Clone(d.RevenueByPeriod)
	return d
}

// CloneAll deep copies every record.
func CloneAll[T interface{ Clone() T }](records []T) []T {
	if records == nil {
		return nil
	}
	out := make([]T, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
