// Package event 定义模拟核心发出的离散事件以及同步分发器
//
// 核心只负责发出事件，声音、界面、记录等外部协作方通过订阅响应。
// 所有事件在模拟 goroutine 内同步分发，监听器不得阻塞。
package event

// Type 事件类型
type Type string

// Event 一条事件
// Data 为对应类型的 *Data 结构体（值类型）
type Event struct {
	Type Type
	Data any
}

// Listener 事件订阅者
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc 允许普通函数作为 Listener
type ListenerFunc func(e Event)

// OnEvent 实现 Listener
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// Subscription 订阅句柄，用于取消订阅
type Subscription uint64

type subscriber struct {
	id       Subscription
	listener Listener
}

// Dispatcher 同步事件分发器
//
// 同一类型的监听器按订阅顺序调用，
// 通配监听器（SubscribeAll）在特定类型监听器之后调用。
// nil *Dispatcher 是合法的，所有方法均为空操作。
type Dispatcher struct {
	nextID    Subscription
	listeners map[Type][]subscriber
	wildcard  []subscriber
}

// NewDispatcher 创建分发器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[Type][]subscriber),
	}
}

// Subscribe 订阅指定类型的事件
func (d *Dispatcher) Subscribe(t Type, l Listener) Subscription {
	if d == nil || l == nil {
		return 0
	}
	d.nextID++
	d.listeners[t] = append(d.listeners[t], subscriber{id: d.nextID, listener: l})
	return d.nextID
}

// SubscribeAll 订阅所有事件
func (d *Dispatcher) SubscribeAll(l Listener) Subscription {
	if d == nil || l == nil {
		return 0
	}
	d.nextID++
	d.wildcard = append(d.wildcard, subscriber{id: d.nextID, listener: l})
	return d.nextID
}

// Unsubscribe 取消订阅，未知句柄忽略
func (d *Dispatcher) Unsubscribe(s Subscription) {
	if d == nil || s == 0 {
		return
	}
	for t, subs := range d.listeners {
		d.listeners[t] = removeSubscriber(subs, s)
	}
	d.wildcard = removeSubscriber(d.wildcard, s)
}

func removeSubscriber(subs []subscriber, s Subscription) []subscriber {
	for i, sub := range subs {
		if sub.id == s {
			return append(subs[:i:i], subs[i+1:]...)
		}
	}
	return subs
}

// Dispatch 把事件发送给所有订阅者
func (d *Dispatcher) Dispatch(e Event) {
	if d == nil {
		return
	}
	for _, sub := range d.listeners[e.Type] {
		sub.listener.OnEvent(e)
	}
	for _, sub := range d.wildcard {
		sub.listener.OnEvent(e)
	}
}

// Emit 构造并分发事件
func (d *Dispatcher) Emit(t Type, data any) {
	d.Dispatch(Event{Type: t, Data: data})
}
