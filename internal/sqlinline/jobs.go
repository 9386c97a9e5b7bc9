package sqlinline

const QInsertJob = `--sql a3a1f747-eb25-4989-9896-f318deafb9f5
insert into generation_jobs (id, user_email, status, idea_text, created_at, updated_at)
values ($1, $2, $3, $4, now(), now());
`

const QClaimNextPendingJob = `--sql f613447d-c784-41ec-a5f3-394f7e0a26e3
with next_job as (
    select id
    from generation_jobs
    where status = 'pending'
    order by created_at asc
    for update skip locked
    limit 1
),
updated as (
    update generation_jobs
    set status = 'running', updated_at = now()
    where id in (select id from next_job)
    returning id, user_email, status, idea_text, created_at, updated_at
)
select * from updated;
`

const QUpdateJobStatus = `--sql d9600b5e-c2de-4b54-b5c1-14d72c8e8a8e
update generation_jobs
set status = $2,
    updated_at = now(),
    error_message = coalesce($3, error_message),
    result_json = coalesce($4, result_json)
where id = $1;
`

const QSelectJobByID = `--sql 374a4212-be50-4bbc-a586-a622af45948a
select id, user_email, status, idea_text, result_json, coalesce(error_message, ''), created_at, updated_at
from generation_jobs
where id = $1;
`
